package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модель запроса списка слотов на день
type Request struct {
	RoomID int64
	Date   time.Time
}

// Response сетка слотов комнаты на один день
//
// Bookable = false означает, что день в принципе закрыт для новых
// бронирований (воскресенье, прошедший день или сегодня после отсечки);
// сетка при этом возвращается целиком с Available = false
type Response struct {
	RoomID   int64
	Date     time.Time
	Bookable bool
	Slots    []domain.DaySlot
}
