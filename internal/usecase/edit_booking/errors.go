package edit_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("edit_booking: booking not found")

	// ErrNotAuthorized возвращается, когда актор не владелец и не администратор комнаты
	ErrNotAuthorized = errors.New("edit_booking: actor is not authorized")

	// ErrInvalidSlot возвращается, когда время начала не принадлежит сетке слотов
	ErrInvalidSlot = errors.New("edit_booking: invalid slot time")

	// ErrRangeExceeded возвращается, когда длительность выходит за последний слот дня
	ErrRangeExceeded = errors.New("edit_booking: duration extends past the last slot")

	// ErrWeekendBlocked возвращается при переносе бронирования на заблокированный день
	ErrWeekendBlocked = errors.New("edit_booking: date is not a bookable day")

	// ErrPastSlot возвращается при переносе бронирования на прошедший слот
	ErrPastSlot = errors.New("edit_booking: slot is in the past")

	// ErrSlotConflict возвращается при пересечении нового расписания с активным бронированием
	ErrSlotConflict = errors.New("edit_booking: slot conflicts with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_booking: internal error")
)
