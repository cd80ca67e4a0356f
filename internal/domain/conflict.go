package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

var (
	// ErrInvalidSlot возвращается, когда время начала не принадлежит сетке слотов
	ErrInvalidSlot = errors.New("domain: start time is not a valid slot")

	// ErrInvalidDuration возвращается при неположительной длительности hourly бронирования
	ErrInvalidDuration = errors.New("domain: duration must be at least one slot")

	// ErrRangeExceeded возвращается, когда длительность выходит за последний слот дня
	ErrRangeExceeded = errors.New("domain: duration extends past the last offerable slot")

	// ErrInvalidKind возвращается при неизвестном виде бронирования
	ErrInvalidKind = errors.New("domain: unknown booking kind")

	// ErrInvalidDateRange возвращается, когда дата конца раньше даты начала
	ErrInvalidDateRange = errors.New("domain: end date is before start date")
)

// Candidate предлагаемое, еще не зафиксированное бронирование,
// поданное на проверку конфликтов
type Candidate struct {
	Kind      BookingKind
	StartDate time.Time
	EndDate   time.Time // только для multi_day

	// Только для hourly
	StartTime     types.TimeString
	DurationSlots int
}

// weeklySpanDays длина недельного бронирования в днях (включительно)
const weeklySpanDays = 7

// Span возвращает занимаемый диапазон дат [start, end] включительно
// hourly и full_day занимают один день; multi_day задается явно;
// weekly вычисляется как start + 6 дней
func (c *Candidate) Span() (time.Time, time.Time, error) {
	start := DateOnly(c.StartDate)

	switch c.Kind {
	case KindHourly, KindFullDay:
		return start, start, nil
	case KindMultiDay:
		end := DateOnly(c.EndDate)
		if end.Before(start) {
			return time.Time{}, time.Time{}, ErrInvalidDateRange
		}
		return start, end, nil
	case KindWeekly:
		return start, start.AddDate(0, 0, weeklySpanDays-1), nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidKind
	}
}

// SlotRange возвращает полуинтервал индексов слотов [start, end) hourly кандидата
// SlotNotFound и выход за сетку - жесткие ошибки валидации
func (c *Candidate) SlotRange() (int, int, error) {
	startIndex := SlotIndex(c.StartTime)
	if startIndex == SlotNotFound {
		return 0, 0, ErrInvalidSlot
	}
	if c.DurationSlots < 1 {
		return 0, 0, ErrInvalidDuration
	}
	endIndex := startIndex + c.DurationSlots
	if endIndex > SlotCount {
		return 0, 0, ErrRangeExceeded
	}
	return startIndex, endIndex, nil
}

// FindConflict ищет первое активное бронирование, пересекающееся с кандидатом.
// Отклоненные бронирования освобождают слот и не участвуют в проверке;
// pending и approved оба удерживают слот.
//
// Сравнения дат включительны с обоих концов, внутридневные сравнения времени
// ведутся на полуинтервалах индексов слотов [start, end)
func FindConflict(existing []*Booking, c Candidate) (*Booking, error) {
	if c.Kind == KindHourly {
		return findHourlyConflict(existing, c)
	}
	return findDaySpanConflict(existing, c)
}

// HasConflict возвращает true, если кандидат пересекается с существующим бронированием
func HasConflict(existing []*Booking, c Candidate) (bool, error) {
	conflict, err := FindConflict(existing, c)
	if err != nil {
		return false, err
	}
	return conflict != nil, nil
}

// CanBook дополнение HasConflict: true, когда слот свободен
func CanBook(existing []*Booking, c Candidate) (bool, error) {
	hasConflict, err := HasConflict(existing, c)
	if err != nil {
		return false, err
	}
	return !hasConflict, nil
}

// findHourlyConflict проверяет hourly кандидата против бронирований,
// покрывающих его дату
func findHourlyConflict(existing []*Booking, c Candidate) (*Booking, error) {
	startIndex, endIndex, err := c.SlotRange()
	if err != nil {
		return nil, err
	}

	for _, b := range existing {
		if !b.IsActive() {
			continue
		}
		if !b.CoversDate(c.StartDate) {
			continue
		}

		// Не-hourly бронирование занимает весь день - конфликт безусловный
		if !b.IsHourly() {
			return b, nil
		}

		bStart := SlotIndex(b.StartTime)
		if bStart == SlotNotFound {
			// Запись с временем вне сетки не могла пройти через create;
			// пропускаем, чтобы битая строка не блокировала всю комнату
			continue
		}
		bEnd := bStart + b.DurationSlots

		// Пересечение полуинтервалов [startIndex, endIndex) и [bStart, bEnd)
		if startIndex < bEnd && bStart < endIndex {
			return b, nil
		}
	}

	return nil, nil
}

// findDaySpanConflict проверяет не-hourly кандидата: каждый день его диапазона
// должен быть полностью свободен независимо от гранулярности существующих бронирований
func findDaySpanConflict(existing []*Booking, c Candidate) (*Booking, error) {
	start, end, err := c.Span()
	if err != nil {
		return nil, err
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		for _, b := range existing {
			if !b.IsActive() {
				continue
			}
			if b.CoversDate(d) {
				return b, nil
			}
		}
	}

	return nil, nil
}
