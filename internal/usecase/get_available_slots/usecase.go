package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// UseCase use case для получения сетки доступных слотов комнаты на день
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepository BookingRepository, roomRepository RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepository,
		roomRepo:     roomRepository,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetAvailableSlots: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	day := domain.DateOnly(req.Date)
	bookable := domain.IsBookableDay(day) && domain.CanOfferBookingDay(day, now)

	slots := make([]domain.DaySlot, 0, domain.SlotCount)

	// Закрытый день отдаем полной сеткой без свободных слотов
	if !bookable {
		for i, slot := range domain.SlotTimes() {
			slots = append(slots, domain.DaySlot{Index: i, StartTime: slot})
		}
		return &Response{RoomID: req.RoomID, Date: day, Bookable: false, Slots: slots}, nil
	}

	existing, err := uc.bookingRepo.GetByRoomWithFilter(ctx, domain.RoomBookingsFilter{
		RoomID:    req.RoomID,
		StartDate: ptr.Ptr(day),
		EndDate:   ptr.Ptr(day),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	for i, slot := range domain.SlotTimes() {
		available := !domain.IsSlotInPast(day, slot, now)
		if available {
			occupied, err := domain.HasConflict(existing, domain.Candidate{
				Kind:          domain.KindHourly,
				StartDate:     day,
				StartTime:     slot,
				DurationSlots: 1,
			})
			if err != nil {
				uc.logger.Error("GetAvailableSlots: conflict check failed: %v", err)
				return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
			}
			available = !occupied
		}

		slots = append(slots, domain.DaySlot{Index: i, StartTime: slot, Available: available})
	}

	return &Response{RoomID: req.RoomID, Date: day, Bookable: true, Slots: slots}, nil
}
