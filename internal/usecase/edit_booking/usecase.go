package edit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// UseCase use case для редактирования бронирования
//
// Исторически редактирование обходило повторную проверку конфликтов; здесь
// этот путь закрыт: перенос расписания прогоняется через детектор конфликтов
// заново, в той же сериализуемой транзакции, что и запись
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepository,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case редактирования бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditBooking: actor=%d, booking=%d", req.Actor.ID, req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Валидация новой временной протяженности
	candidate := req.candidate()
	spanStart, spanEnd, err := validateExtent(candidate)
	if err != nil {
		uc.logger.Warn("EditBooking: extent validation failed: %v", err)
		return nil, err
	}

	// 3. Календарные гварды нового расписания
	if err := validateSchedule(candidate, spanStart, spanEnd, now); err != nil {
		uc.logger.Warn("EditBooking: schedule validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 4. Чтение, проверка прав, повторная проверка конфликтов и запись -
	// одной сериализуемой транзакцией
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("EditBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("EditBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Редактировать может владелец или администратор комнаты
		if !req.Actor.Owns(booking) && !req.Actor.CanManage(booking.RoomID) {
			uc.logger.Warn("EditBooking: access denied for actor=%d to booking id=%d",
				req.Actor.ID, req.BookingID)
			return ErrNotAuthorized
		}

		// Повторная проверка конфликтов нового расписания;
		// само редактируемое бронирование из проверки исключается
		existing, err := uc.bookingRepo.GetByRoomWithFilter(txCtx, domain.RoomBookingsFilter{
			RoomID:    booking.RoomID,
			StartDate: ptr.Ptr(spanStart),
			EndDate:   ptr.Ptr(spanEnd),
		})
		if err != nil {
			uc.logger.Error("EditBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		others := make([]*domain.Booking, 0, len(existing))
		for _, b := range existing {
			if b.ID != booking.ID {
				others = append(others, b)
			}
		}

		conflict, err := domain.FindConflict(others, candidate)
		if err != nil {
			return mapExtentError(err)
		}
		if conflict != nil {
			uc.logger.Warn("EditBooking: slot conflict with booking id=%d", conflict.ID)
			return ErrSlotConflict
		}

		// Атомарная замена изменяемых полей
		patch := domain.BookingPatch{
			Kind:           req.Kind,
			StartDate:      spanStart,
			EndDate:        spanEnd,
			StartTime:      req.StartTime,
			DurationSlots:  req.DurationSlots,
			Title:          req.Title,
			OrganizerName:  req.OrganizerName,
			OrganizerEmail: req.OrganizerEmail,
			Attendees:      req.Attendees,
			Description:    req.Description,
		}

		if err := uc.bookingRepo.Update(txCtx, booking.ID, patch); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("EditBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		updated, err := uc.bookingRepo.GetByID(txCtx, booking.ID)
		if err != nil {
			uc.logger.Error("EditBooking: failed to reload booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("EditBooking: successfully updated booking id=%d", result.ID)

	return fromDomain(result), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Actor.IsAuthenticated() {
		return ErrNotAuthorized
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
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

	if req.OrganizerEmail == "" {
		return fmt.Errorf("%w: organizerEmail is required", ErrInvalidInput)
	}

	if req.Attendees < domain.MinAttendees {
		return fmt.Errorf("%w: attendees must be positive", ErrInvalidInput)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	return nil
}

// validateExtent проверяет слотовый диапазон (hourly) и диапазон дат кандидата
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

// validateSchedule календарные гварды нового расписания (как при создании):
// проверяется только день начала, внутренние дни multi_day/weekly
// диапазона могут приходиться на воскресенье
func validateSchedule(c domain.Candidate, start, end, now time.Time) error {
	if !domain.IsBookableDay(start) {
		return ErrWeekendBlocked
	}

	if c.Kind == domain.KindHourly {
		if domain.IsSlotInPast(c.StartDate, c.StartTime, now) {
			return ErrPastSlot
		}
		return nil
	}

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
