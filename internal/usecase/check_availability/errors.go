package check_availability

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("check_availability: room not found")

	// ErrInvalidSlot возвращается, когда время начала не принадлежит сетке слотов
	ErrInvalidSlot = errors.New("check_availability: invalid slot time")

	// ErrRangeExceeded возвращается, когда длительность выходит за последний слот дня
	ErrRangeExceeded = errors.New("check_availability: duration extends past the last slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
