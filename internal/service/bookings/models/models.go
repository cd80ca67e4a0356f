package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetMyBookingsRequest запрос на получение бронирований организатора
type GetMyBookingsRequest struct {
	Actor  domain.Actor
	Status *string
}

// GetRoomBookingsRequest запрос на получение бронирований комнаты
//
// Фильтры статуса и показа отклоненных доступны только администраторам
// комнаты; обычный просмотр отдает только активные бронирования
type GetRoomBookingsRequest struct {
	Actor           domain.Actor
	RoomID          int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeRejected bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRoomBookingsRequest) ToDomainFilter() (domain.RoomBookingsFilter, error) {
	filter := domain.RoomBookingsFilter{
		RoomID:          r.RoomID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeRejected: r.IncludeRejected,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// RejectBookingRequest запрос на отклонение бронирования
type RejectBookingRequest struct {
	Actor     domain.Actor
	BookingID int64
	Reason    *string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64      `json:"id"`
	RoomID         int64      `json:"roomId"`
	Kind           string     `json:"kind"`
	StartDate      string     `json:"startDate"` // "2025-06-02"
	EndDate        string     `json:"endDate"`   // "2025-06-02"
	StartTime      string     `json:"startTime,omitempty"`
	DurationSlots  int        `json:"durationSlots,omitempty"`
	Title          string     `json:"title"`
	OrganizerID    int64      `json:"organizerId"`
	OrganizerName  string     `json:"organizerName"`
	OrganizerEmail string     `json:"organizerEmail"`
	Attendees      int        `json:"attendees"`
	Description    *string    `json:"description,omitempty"`
	Status         string     `json:"status"`
	DecidedBy      *string    `json:"decidedBy,omitempty"`
	DecidedAt      *time.Time `json:"decidedAt,omitempty"`
	RejectReason   *string    `json:"rejectReason,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// Конвертеры

// FromDomainBooking конвертирует domain бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID,
		RoomID:         b.RoomID,
		Kind:           string(b.Kind),
		StartDate:      b.StartDate.Format(domain.DateFormat),
		EndDate:        b.EndDate.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		DurationSlots:  b.DurationSlots,
		Title:          b.Title,
		OrganizerID:    b.OrganizerID,
		OrganizerName:  b.OrganizerName,
		OrganizerEmail: b.OrganizerEmail,
		Attendees:      b.Attendees,
		Description:    b.Description,
		Status:         string(b.Status),
		DecidedBy:      b.DecidedBy,
		DecidedAt:      b.DecidedAt,
		RejectReason:   b.RejectReason,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain бронирований в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.ValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}
