package create_room

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Category  string   `json:"category"` // conference | computer_lab | special | other
	Amenities []string `json:"amenities,omitempty"`
	AdminIDs  []int64  `json:"adminIds,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRoomRequest) ToServiceRequest(actor domain.Actor) *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		Actor:     actor,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Category:  r.Category,
		Amenities: r.Amenities,
		AdminIDs:  r.AdminIDs,
	}
}
