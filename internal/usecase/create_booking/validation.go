package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Actor.IsAuthenticated() {
		return ErrNotAuthorized
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if !domain.ValidKind(req.Kind) {
		return fmt.Errorf("%w: unknown booking kind %q", ErrInvalidInput, req.Kind)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.Kind == domain.KindMultiDay && req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required for multi-day bookings", ErrInvalidInput)
	}

	if req.Kind == domain.KindHourly && req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required for hourly bookings", ErrInvalidInput)
	}

	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}

	if req.Attendees < domain.MinAttendees {
		return fmt.Errorf("%w: attendees must be positive", ErrInvalidInput)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	return nil
}

// validateExtent проверяет временную протяженность кандидата:
// корректность слотового диапазона (hourly) и диапазона дат
func validateExtent(c domain.Candidate) (time.Time, time.Time, error) {
	if c.Kind == domain.KindHourly {
		if _, _, err := c.SlotRange(); err != nil {
			return time.Time{}, time.Time{}, mapExtentError(err)
		}
	}

	start, end, err := c.Span()
	if err != nil {
		return time.Time{}, time.Time{}, mapExtentError(err)
	}

	if c.Kind == domain.KindMultiDay {
		if int(end.Sub(start).Hours()/24)+1 > domain.MaxMultiDaySpanDays {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: multi-day span is too long", ErrInvalidInput)
		}
	}

	return start, end, nil
}

// validateSchedule проверяет календарные гварды создания:
// день начала должен быть доступным, слот не должен быть в прошлом.
// Внутренние дни multi_day/weekly диапазона проверке не подлежат:
// недельное бронирование всегда накрывает воскресенье, диапазон просто
// несет его как занятый день
func validateSchedule(c domain.Candidate, start, end, now time.Time) error {
	// Воскресенье как день начала блокируется независимо от конфликтов
	if !domain.IsBookableDay(start) {
		return ErrWeekendBlocked
	}

	if c.Kind == domain.KindHourly {
		// hourly проверяет конкретный момент начала
		if domain.IsSlotInPast(c.StartDate, c.StartTime, now) {
			return ErrPastSlot
		}
		return nil
	}

	// Не-hourly виды гранулярны по датам и освобождены от проверки времени:
	// прошедшим считается только день раньше сегодняшнего
	if start.Before(domain.DateOnly(now)) {
		return ErrPastSlot
	}

	return nil
}

// mapExtentError транслирует ошибки детектора конфликтов в ошибки usecase
func mapExtentError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidSlot):
		return ErrInvalidSlot
	case errors.Is(err, domain.ErrRangeExceeded):
		return ErrRangeExceeded
	case errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidKind):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
