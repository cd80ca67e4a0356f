package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrNotAuthorized возвращается, когда бронирование создает неаутентифицированный актор
	ErrNotAuthorized = errors.New("create_booking: actor is not authorized")

	// ErrInvalidSlot возвращается, когда время начала не принадлежит сетке слотов
	ErrInvalidSlot = errors.New("create_booking: invalid slot time")

	// ErrRangeExceeded возвращается, когда длительность выходит за последний слот дня
	ErrRangeExceeded = errors.New("create_booking: duration extends past the last slot")

	// ErrWeekendBlocked возвращается при попытке бронирования на заблокированный день
	ErrWeekendBlocked = errors.New("create_booking: date is not a bookable day")

	// ErrPastSlot возвращается при попытке забронировать уже прошедший слот
	ErrPastSlot = errors.New("create_booking: slot is in the past")

	// ErrSlotConflict возвращается при пересечении с существующим активным бронированием
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
