package edit_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	editBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/edit_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// EditBookingRequest HTTP request model
// Замена изменяемых полей целиком: комната и статус через Edit не меняются
type EditBookingRequest struct {
	Kind           string  `json:"kind"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate,omitempty"`
	StartTime      string  `json:"startTime,omitempty"`
	DurationSlots  int     `json:"durationSlots,omitempty"`
	Title          string  `json:"title"`
	OrganizerName  string  `json:"organizerName"`
	OrganizerEmail string  `json:"organizerEmail"`
	Attendees      int     `json:"attendees"`
	Description    *string `json:"description,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	RoomID         int64   `json:"roomId"`
	Kind           string  `json:"kind"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	StartTime      string  `json:"startTime,omitempty"`
	DurationSlots  int     `json:"durationSlots,omitempty"`
	Title          string  `json:"title"`
	OrganizerID    int64   `json:"organizerId"`
	OrganizerName  string  `json:"organizerName"`
	OrganizerEmail string  `json:"organizerEmail"`
	Attendees      int     `json:"attendees"`
	Description    *string `json:"description,omitempty"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EditBookingRequest) ToUseCaseRequest(actor domain.Actor, bookingID int64) (*editBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	var endDate time.Time
	if r.EndDate != "" {
		endDate, err = time.Parse(domain.DateFormat, r.EndDate)
		if err != nil {
			return nil, err
		}
	}

	var startTime types.TimeString
	if r.StartTime != "" {
		startTime, err = types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
	}

	return &editBooking.Request{
		Actor:          actor,
		BookingID:      bookingID,
		Kind:           domain.BookingKind(r.Kind),
		StartDate:      startDate,
		EndDate:        endDate,
		StartTime:      startTime,
		DurationSlots:  r.DurationSlots,
		Title:          r.Title,
		OrganizerName:  r.OrganizerName,
		OrganizerEmail: r.OrganizerEmail,
		Attendees:      r.Attendees,
		Description:    r.Description,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *editBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		RoomID:         resp.RoomID,
		Kind:           resp.Kind,
		StartDate:      resp.StartDate.Format(domain.DateFormat),
		EndDate:        resp.EndDate.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		DurationSlots:  resp.DurationSlots,
		Title:          resp.Title,
		OrganizerID:    resp.OrganizerID,
		OrganizerName:  resp.OrganizerName,
		OrganizerEmail: resp.OrganizerEmail,
		Attendees:      resp.Attendees,
		Description:    resp.Description,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
