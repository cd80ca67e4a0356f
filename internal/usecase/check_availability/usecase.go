package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// UseCase use case для проверки доступности комнаты под кандидата бронирования
//
// Проверка чисто детекторная: календарные гварды (прошлое, выходные)
// здесь не применяются, а два вызова подряд без записей между ними
// дают одинаковый результат
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepository BookingRepository, roomRepository RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepository,
		roomRepo:    roomRepository,
		logger:      logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	candidate := req.candidate()

	spanStart, spanEnd, err := candidate.Span()
	if err != nil {
		return nil, mapExtentError(err)
	}
	if candidate.Kind == domain.KindHourly {
		if _, _, err := candidate.SlotRange(); err != nil {
			return nil, mapExtentError(err)
		}
	}

	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	existing, err := uc.bookingRepo.GetByRoomWithFilter(ctx, domain.RoomBookingsFilter{
		RoomID:    req.RoomID,
		StartDate: ptr.Ptr(spanStart),
		EndDate:   ptr.Ptr(spanEnd),
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	conflict, err := domain.FindConflict(existing, candidate)
	if err != nil {
		return nil, mapExtentError(err)
	}

	return &Response{
		Available: conflict == nil,
		Conflict:  conflictInfo(conflict),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
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
