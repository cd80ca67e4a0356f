package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/notifier"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	notifier     NotifierClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		notifier:     notifierClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка доступности и запись выполняются в одной сериализуемой транзакции
// с блокировкой прочитанных строк - две конкурентные попытки занять один слот
// не могут переплести свои read-check-write последовательности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: actor=%d, room=%d, kind=%s, date=%s",
		req.Actor.ID, req.RoomID, req.Kind, req.StartDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация временной протяженности (сетка слотов, диапазон дат)
	candidate := req.candidate()
	spanStart, spanEnd, err := validateExtent(candidate)
	if err != nil {
		uc.logger.Warn("CreateBooking: extent validation failed: %v", err)
		return nil, err
	}

	// 4. Календарные гварды: заблокированные дни и прошедшие слоты
	if err := validateSchedule(candidate, spanStart, spanEnd, now); err != nil {
		uc.logger.Warn("CreateBooking: schedule validation failed: %v", err)
		return nil, err
	}

	// 5. Комната должна существовать (реестр комнат неизменяемый, читаем вне транзакции)
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// Вместимость комнаты - мягкое ограничение: предупреждаем, но не отклоняем
	if req.Attendees > room.Capacity {
		uc.logger.Warn("CreateBooking: attendees=%d exceeds capacity=%d of room id=%d",
			req.Attendees, room.Capacity, room.ID)
	}

	var result *domain.Booking

	// 6. Проверка конфликтов и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Все активные бронирования комнаты, пересекающие диапазон кандидата,
		// с блокировкой (FOR UPDATE). Display-фильтры сюда не попадают:
		// write-path всегда смотрит на все не-отклоненные бронирования
		existing, err := uc.bookingRepo.GetByRoomWithFilter(txCtx, domain.RoomBookingsFilter{
			RoomID:    req.RoomID,
			StartDate: ptr.Ptr(spanStart),
			EndDate:   ptr.Ptr(spanEnd),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Детектор конфликтов
		conflict, err := domain.FindConflict(existing, candidate)
		if err != nil {
			return mapExtentError(err)
		}
		if conflict != nil {
			uc.logger.Warn("CreateBooking: slot conflict with booking id=%d", conflict.ID)
			return ErrSlotConflict
		}

		// 6.3. Создаем бронирование; новое бронирование всегда pending
		booking := &domain.Booking{
			RoomID:         req.RoomID,
			Kind:           req.Kind,
			StartDate:      spanStart,
			EndDate:        spanEnd,
			StartTime:      req.StartTime,
			DurationSlots:  req.DurationSlots,
			Title:          req.Title,
			OrganizerID:    req.Actor.ID,
			OrganizerName:  req.Actor.Name,
			OrganizerEmail: req.Actor.Email,
			Attendees:      req.Attendees,
			Description:    req.Description,
			Status:         domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 7. Уведомление после фиксации транзакции; сбой доставки не влияет на результат
	uc.notifier.NotifyAsync(notifier.Event{
		Type:           notifier.EventBookingCreated,
		BookingID:      result.ID,
		RoomID:         room.ID,
		RoomName:       room.Name,
		OrganizerEmail: result.OrganizerEmail,
		Title:          result.Title,
		StartDate:      result.StartDate.Format(domain.DateFormat),
		EndDate:        result.EndDate.Format(domain.DateFormat),
		StartTime:      result.StartTime.String(),
	})

	return fromDomain(result), nil
}
