package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/notifier"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований: просмотр, согласование, отмена
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	notifier    NotifierClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	notifierClient NotifierClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		notifier:    notifierClient,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Детали видят организатор бронирования и администраторы комнаты
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for actor=%d", id, actor.ID)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if !actor.Owns(booking) && !actor.CanManage(booking.RoomID) {
		s.logger.Warn("GetByID: access denied for actor=%d to booking id=%d", actor.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetMyBookings получает историю бронирований организатора
// Опционально фильтрует по статусу
func (s *Service) GetMyBookings(ctx context.Context, req *models.GetMyBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetMyBookings: fetching bookings for actor=%d, status=%v", req.Actor.ID, req.Status)

	if !req.Actor.IsAuthenticated() {
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetMyBookings: invalid status=%s for actor=%d", *req.Status, req.Actor.ID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByOrganizer(ctx, req.Actor.ID, domainStatus)
	if err != nil {
		s.logger.Error("GetMyBookings: repository error for actor=%d: %v", req.Actor.ID, err)
		return nil, fmt.Errorf("%w: GetMyBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMyBookings: successfully fetched %d bookings for actor=%d", len(bookings), req.Actor.ID)
	return models.FromDomainBookingList(bookings), nil
}

// GetRoomBookings получает бронирования комнаты за период (календарь комнаты)
//
// Обычный просмотр отдает только активные бронирования; фильтр по статусу
// и показ отклоненных доступны только администраторам комнаты.
// Этот путь исключительно для отображения, проверка конфликтов на запись
// на него никогда не опирается
func (s *Service) GetRoomBookings(ctx context.Context, req *models.GetRoomBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetRoomBookings: fetching bookings for room=%d, actor=%d", req.RoomID, req.Actor.ID)

	if _, err := s.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoomBookings: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoomBookings: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomBookings - room lookup: %v", ErrInternal, err)
	}

	if (req.Status != nil || req.IncludeRejected) && !req.Actor.CanManage(req.RoomID) {
		s.logger.Warn("GetRoomBookings: status filter denied for actor=%d on room=%d", req.Actor.ID, req.RoomID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRoomBookings: invalid filter for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomBookings: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomBookings: successfully fetched %d bookings for room=%d", len(bookings), req.RoomID)
	return models.FromDomainBookingList(bookings), nil
}

// Approve подтверждает ожидающее бронирование
// Доступно только администраторам комнаты; подтвердить можно только pending
func (s *Service) Approve(ctx context.Context, actor domain.Actor, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("Approve: approving booking id=%d by actor=%d", bookingID, actor.ID)

	booking, err := s.decide(ctx, actor, bookingID, domain.StatusApproved, nil)
	if err != nil {
		return nil, err
	}

	s.notifyLifecycle(ctx, notifier.EventBookingApproved, booking, nil)

	s.logger.Info("Approve: successfully approved booking id=%d", bookingID)
	return models.FromDomainBooking(booking), nil
}

// Reject отклоняет ожидающее бронирование, освобождая его слоты
// Доступно только администраторам комнаты; отклонить можно только pending
func (s *Service) Reject(ctx context.Context, req *models.RejectBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Reject: rejecting booking id=%d by actor=%d", req.BookingID, req.Actor.ID)

	if req.Reason != nil && len(*req.Reason) > domain.MaxRejectReasonLength {
		return nil, fmt.Errorf("%w: reject reason is too long", ErrInvalidInput)
	}

	booking, err := s.decide(ctx, req.Actor, req.BookingID, domain.StatusRejected, req.Reason)
	if err != nil {
		return nil, err
	}

	s.notifyLifecycle(ctx, notifier.EventBookingRejected, booking, req.Reason)

	s.logger.Info("Reject: successfully rejected booking id=%d", req.BookingID)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование, физически удаляя запись
// Доступно организатору бронирования и администраторам комнаты
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by actor=%d", bookingID, actor.ID)

	var cancelled *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, bookingID, "Cancel")
		if err != nil {
			return err
		}

		if !actor.Owns(booking) && !actor.CanManage(booking.RoomID) {
			s.logger.Warn("Cancel: access denied for actor=%d to booking id=%d", actor.ID, bookingID)
			return ErrAccessDenied
		}

		if err := s.bookingRepo.Delete(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		cancelled = booking
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyLifecycle(ctx, notifier.EventBookingCancelled, cancelled, nil)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

// decide переводит pending бронирование в терминальный статус одной
// сериализуемой транзакцией: чтение под блокировкой, гвард перехода, запись.
// Повторный approve/reject по уже решенному бронированию дает ErrInvalidTransition
func (s *Service) decide(ctx context.Context, actor domain.Actor, bookingID int64, status domain.BookingStatus, reason *string) (*domain.Booking, error) {
	var decided *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, bookingID, "decide")
		if err != nil {
			return err
		}

		if !actor.CanManage(booking.RoomID) {
			s.logger.Warn("decide: access denied for actor=%d to booking id=%d", actor.ID, bookingID)
			return ErrAccessDenied
		}

		if booking.Status != domain.StatusPending {
			s.logger.Warn("decide: booking id=%d is not pending, status=%s", bookingID, booking.Status)
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.SetDecision(txCtx, bookingID, status, actor.Email, reason); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("decide: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: decide - repository error: %v", ErrInternal, err)
		}

		updated, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			s.logger.Error("decide: failed to reload booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: decide - reload booking: %v", ErrInternal, err)
		}

		decided = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return decided, nil
}

// getBooking читает бронирование, транслируя not found в сервисную ошибку
func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// notifyLifecycle отправляет уведомление о событии жизненного цикла;
// сбой доставки логируется и не влияет на результат операции
func (s *Service) notifyLifecycle(ctx context.Context, event notifier.EventType, booking *domain.Booking, reason *string) {
	roomName := ""
	if room, err := s.roomRepo.GetByID(ctx, booking.RoomID); err == nil {
		roomName = room.Name
	}

	s.notifier.NotifyAsync(notifier.Event{
		Type:           event,
		BookingID:      booking.ID,
		RoomID:         booking.RoomID,
		RoomName:       roomName,
		OrganizerEmail: booking.OrganizerEmail,
		Title:          booking.Title,
		StartDate:      booking.StartDate.Format(domain.DateFormat),
		EndDate:        booking.EndDate.Format(domain.DateFormat),
		StartTime:      booking.StartTime.String(),
		Reason:         reason,
	})
}
