package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Тестовые заглушки зависимостей usecase

type stubBookingRepo struct {
	bookings []*domain.Booking
}

func (s *stubBookingRepo) GetByRoomWithFilter(_ context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.RoomID != filter.RoomID {
			continue
		}
		if !filter.IncludeRejected && filter.Status == nil && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type stubRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (s *stubRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if room, ok := s.rooms[id]; ok {
		return room, nil
	}
	return nil, roomRepo.ErrRoomNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(day int) time.Time {
	return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(t *testing.T, seed ...*domain.Booking) *UseCase {
	t.Helper()

	bookings := &stubBookingRepo{bookings: seed}
	rooms := &stubRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Большая переговорка", Capacity: 25, Category: domain.CategoryConference},
	}}

	return NewUseCase(bookings, rooms, nopLogger{})
}

func hourlyBooking(id int64, day int, start string, slots int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		RoomID:        1,
		Kind:          domain.KindHourly,
		StartDate:     date(day),
		EndDate:       date(day),
		StartTime:     types.TimeString(start),
		DurationSlots: slots,
		Status:        status,
	}
}

func hourlyRequest(day int, start string, slots int) *Request {
	return &Request{
		RoomID:        1,
		Kind:          domain.KindHourly,
		StartDate:     date(day),
		StartTime:     types.TimeString(start),
		DurationSlots: slots,
	}
}

func TestExecute_Available(t *testing.T) {
	uc := newTestUseCase(t, hourlyBooking(10, 2, "09:00", 2, domain.StatusApproved))

	resp, err := uc.Execute(context.Background(), hourlyRequest(2, "11:00", 1))
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Nil(t, resp.Conflict)
}

func TestExecute_ConflictReported(t *testing.T) {
	uc := newTestUseCase(t, hourlyBooking(10, 2, "09:00", 2, domain.StatusApproved))

	resp, err := uc.Execute(context.Background(), hourlyRequest(2, "10:00", 1))
	require.NoError(t, err)

	assert.False(t, resp.Available)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, int64(10), resp.Conflict.ID)
	assert.Equal(t, "09:00", string(resp.Conflict.StartTime))
}

func TestExecute_PendingBlocks(t *testing.T) {
	uc := newTestUseCase(t, hourlyBooking(10, 2, "14:00", 1, domain.StatusPending))

	resp, err := uc.Execute(context.Background(), hourlyRequest(2, "14:00", 1))
	require.NoError(t, err)

	assert.False(t, resp.Available)
}

func TestExecute_RejectedDoesNotBlock(t *testing.T) {
	uc := newTestUseCase(t, hourlyBooking(10, 2, "14:00", 1, domain.StatusRejected))

	resp, err := uc.Execute(context.Background(), hourlyRequest(2, "14:00", 1))
	require.NoError(t, err)

	assert.True(t, resp.Available)
}

func TestExecute_FullDayBlocksEverySlot(t *testing.T) {
	fullDay := &domain.Booking{
		ID:        20,
		RoomID:    1,
		Kind:      domain.KindFullDay,
		StartDate: date(3),
		EndDate:   date(3),
		Status:    domain.StatusApproved,
	}
	uc := newTestUseCase(t, fullDay)

	for _, slot := range domain.SlotTimes() {
		resp, err := uc.Execute(context.Background(), &Request{
			RoomID:        1,
			Kind:          domain.KindHourly,
			StartDate:     date(3),
			StartTime:     slot,
			DurationSlots: 1,
		})
		require.NoError(t, err)
		assert.False(t, resp.Available, "slot %s must be blocked", slot)
	}
}

func TestExecute_Idempotent(t *testing.T) {
	uc := newTestUseCase(t, hourlyBooking(10, 2, "09:00", 2, domain.StatusApproved))

	first, err := uc.Execute(context.Background(), hourlyRequest(2, "10:00", 1))
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), hourlyRequest(2, "10:00", 1))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(t)

	req := hourlyRequest(2, "10:00", 1)
	req.RoomID = 42

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InvalidSlot(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), hourlyRequest(2, "19:00", 1))
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_RangeExceeded(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), hourlyRequest(2, "17:00", 3))
	assert.ErrorIs(t, err, ErrRangeExceeded)
}
