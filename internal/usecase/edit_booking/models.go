package edit_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на редактирование бронирования
// Изменяемые поля заменяются целиком одним атомарным обновлением;
// комната и статус согласования через Edit не меняются
type Request struct {
	Actor     domain.Actor
	BookingID int64

	Kind      domain.BookingKind
	StartDate time.Time
	EndDate   time.Time // только для multi_day

	// Только для hourly
	StartTime     types.TimeString
	DurationSlots int

	Title          string
	OrganizerName  string
	OrganizerEmail string
	Attendees      int
	Description    *string
}

// Response модель ответа с обновленным бронированием
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
