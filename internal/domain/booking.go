package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// BookingStatus represents the approval status of a booking
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

// BookingKind represents the duration type of a booking
type BookingKind string

const (
	KindHourly   BookingKind = "hourly"
	KindFullDay  BookingKind = "full_day"
	KindMultiDay BookingKind = "multi_day"
	KindWeekly   BookingKind = "weekly"
)

// Booking represents a room reservation in the system
type Booking struct {
	ID     int64
	RoomID int64
	Kind   BookingKind

	// Занимаемый диапазон дат [StartDate, EndDate] включительно
	// Для hourly и full_day даты совпадают
	StartDate time.Time
	EndDate   time.Time

	// Только для hourly: время начала слота и длительность в слотах
	// Остальные виды занимают весь день
	StartTime     types.TimeString
	DurationSlots int

	Title          string
	OrganizerID    int64
	OrganizerName  string
	OrganizerEmail string
	Attendees      int
	Description    *string

	Status       BookingStatus
	DecidedBy    *string
	DecidedAt    *time.Time
	RejectReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds its slot.
// Pending bookings reserve capacity provisionally until explicitly rejected.
func (b *Booking) IsActive() bool {
	return b.Status != StatusRejected
}

// IsDecided returns true if the booking reached a terminal approval state
func (b *Booking) IsDecided() bool {
	return b.Status == StatusApproved || b.Status == StatusRejected
}

// IsHourly returns true for slot-granular bookings
func (b *Booking) IsHourly() bool {
	return b.Kind == KindHourly
}

// CoversDate returns true if date d falls inside the booking's inclusive date span
func (b *Booking) CoversDate(d time.Time) bool {
	day := DateOnly(d)
	return !day.Before(DateOnly(b.StartDate)) && !day.After(DateOnly(b.EndDate))
}

// RoomBookingsFilter фильтр для получения бронирований комнаты
type RoomBookingsFilter struct {
	RoomID          int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (только для отображения)
	IncludeRejected bool           // Включать ли отклоненные бронирования
}

// BookingPatch изменяемые поля бронирования (операция Edit)
// Каждая мутация заменяет запись целиком с точки зрения вызывающего
type BookingPatch struct {
	Kind           BookingKind
	StartDate      time.Time
	EndDate        time.Time
	StartTime      types.TimeString
	DurationSlots  int
	Title          string
	OrganizerName  string
	OrganizerEmail string
	Attendees      int
	Description    *string
}
