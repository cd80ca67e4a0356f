package check_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса проверки доступности
type Request struct {
	RoomID int64

	Kind      domain.BookingKind
	StartDate time.Time
	EndDate   time.Time // только для multi_day

	// Только для hourly
	StartTime     types.TimeString
	DurationSlots int
}

// ConflictInfo краткая сводка по конфликтующему бронированию
type ConflictInfo struct {
	ID            int64
	Kind          string
	StartDate     time.Time
	EndDate       time.Time
	StartTime     types.TimeString
	DurationSlots int
	Status        string
}

// Response результат проверки доступности
type Response struct {
	Available bool
	Conflict  *ConflictInfo
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

func conflictInfo(b *domain.Booking) *ConflictInfo {
	if b == nil {
		return nil
	}
	return &ConflictInfo{
		ID:            b.ID,
		Kind:          string(b.Kind),
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		StartTime:     b.StartTime,
		DurationSlots: b.DurationSlots,
		Status:        string(b.Status),
	}
}
