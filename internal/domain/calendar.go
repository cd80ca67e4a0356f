package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// bookingDisplayCutoffHour после этого часа текущий день закрыт для новых бронирований
const bookingDisplayCutoffHour = 18

// IsBookableDay reports whether the date may carry new bookings.
// Воскресенье заблокировано, суббота доступна - фиксированное бизнес-правило,
// не настраивается
func IsBookableDay(date time.Time) bool {
	return date.Weekday() != time.Sunday
}

// IsSlotInPast reports whether the slot instant has already elapsed relative to now.
// Для другой даты сравниваются только дни; для сегодняшней - момент (дата + время слота)
func IsSlotInPast(date time.Time, slot types.TimeString, now time.Time) bool {
	if !IsSameDay(date, now) {
		return DateOnly(date).Before(DateOnly(now))
	}
	instant, err := slot.OnDate(date)
	if err != nil {
		// Неизвестное время отлавливается SlotIndex раньше; здесь считаем прошедшим
		return true
	}
	return instant.Before(now)
}

// CanOfferBookingDay reports whether the date should be offered for new bookings.
// Прошедшие дни закрыты, будущие открыты; сегодня открыт только до 18:00 -
// после отсечки день закрыт для новых бронирований, хотя уже сделанные
// бронирования на сегодня остаются валидными данными.
//
// Правило витрины: его использует только выдача сетки доступных слотов.
// Создание бронирований проверяет IsSlotInPast, а не эту отсечку:
// поздним вечером слотов сегодня все равно не осталось, а дата-гранулярные
// виды считают сегодняшний день действительным до полуночи
func CanOfferBookingDay(date time.Time, now time.Time) bool {
	day := DateOnly(date)
	today := DateOnly(now)

	if day.Before(today) {
		return false
	}
	if day.After(today) {
		return true
	}
	return now.Hour() < bookingDisplayCutoffHour
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время, оставляя только дату
func DateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
