package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor domain.Actor // Кто создает бронирование

	RoomID    int64              // ID комнаты
	Kind      domain.BookingKind // Вид бронирования
	StartDate time.Time          // Дата начала (без времени)
	EndDate   time.Time          // Дата конца (только для multi_day)

	// Только для hourly
	StartTime     types.TimeString // Время начала слота (например, "10:00")
	DurationSlots int              // Длительность в слотах

	Title       string  // Название встречи
	Attendees   int     // Количество участников
	Description *string // Описание (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	RoomID         int64
	Kind           string
	StartDate      time.Time
	EndDate        time.Time
	StartTime      types.TimeString
	DurationSlots  int
	Title          string
	OrganizerID    int64
	OrganizerName  string
	OrganizerEmail string
	Attendees      int
	Description    *string
	Status         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// candidate строит кандидата для детектора конфликтов из запроса
func (r *Request) candidate() domain.Candidate {
	return domain.Candidate{
		Kind:          r.Kind,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		StartTime:     r.StartTime,
		DurationSlots: r.DurationSlots,
	}
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:             b.ID,
		RoomID:         b.RoomID,
		Kind:           string(b.Kind),
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		StartTime:      b.StartTime,
		DurationSlots:  b.DurationSlots,
		Title:          b.Title,
		OrganizerID:    b.OrganizerID,
		OrganizerName:  b.OrganizerName,
		OrganizerEmail: b.OrganizerEmail,
		Attendees:      b.Attendees,
		Description:    b.Description,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
