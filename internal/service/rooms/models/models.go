package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	Actor     domain.Actor
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Category  string   `json:"category"`
	Amenities []string `json:"amenities,omitempty"`
	AdminIDs  []int64  `json:"adminIds,omitempty"`
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Category  string    `json:"category"`
	Amenities []string  `json:"amenities"`
	AdminIDs  []int64   `json:"adminIds,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse список комнат
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
	Total int             `json:"total"`
}

// Конвертеры

// FromDomainRoom конвертирует domain комнату в response
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Category:  string(r.Category),
		Amenities: r.Amenities,
		AdminIDs:  r.AdminIDs,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain комнат в response
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	out := make([]*RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, FromDomainRoom(r))
	}
	return &RoomListResponse{Rooms: out, Total: len(out)}
}
