package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
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

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// now = понедельник 2025-06-02, 10:30 UTC
var testNow = time.Date(2025, time.June, 2, 10, 30, 0, 0, time.UTC)

func date(day int) time.Time {
	return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(t *testing.T, seed ...*domain.Booking) *UseCase {
	t.Helper()

	bookings := &stubBookingRepo{bookings: seed}
	rooms := &stubRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Компьютерный класс", Capacity: 12, Category: domain.CategoryComputerLab},
	}}

	uc := NewUseCase(bookings, rooms, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}

	return uc
}

func availableIndexes(slots []domain.DaySlot) []int {
	out := make([]int, 0)
	for _, s := range slots {
		if s.Available {
			out = append(out, s.Index)
		}
	}
	return out
}

func TestExecute_FutureDayAllFree(t *testing.T) {
	uc := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date(3)})
	require.NoError(t, err)

	assert.True(t, resp.Bookable)
	require.Len(t, resp.Slots, domain.SlotCount)
	assert.Len(t, availableIndexes(resp.Slots), domain.SlotCount)
	assert.Equal(t, "08:00", string(resp.Slots[0].StartTime))
	assert.Equal(t, "18:00", string(resp.Slots[10].StartTime))
}

func TestExecute_BookedSlotsMarked(t *testing.T) {
	uc := newTestUseCase(t, &domain.Booking{
		ID:            10,
		RoomID:        1,
		Kind:          domain.KindHourly,
		StartDate:     date(3),
		EndDate:       date(3),
		StartTime:     "09:00",
		DurationSlots: 2,
		Status:        domain.StatusPending,
	})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date(3)})
	require.NoError(t, err)

	// Заняты индексы 1 и 2 (09:00 и 10:00)
	assert.False(t, resp.Slots[1].Available)
	assert.False(t, resp.Slots[2].Available)
	assert.True(t, resp.Slots[0].Available)
	assert.True(t, resp.Slots[3].Available)
}

func TestExecute_TodayPastSlotsClosed(t *testing.T) {
	uc := newTestUseCase(t)

	// now = 10:30: слоты 08:00, 09:00 и 10:00 уже начались
	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date(2)})
	require.NoError(t, err)

	assert.True(t, resp.Bookable)
	assert.False(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
	assert.False(t, resp.Slots[2].Available)
	assert.True(t, resp.Slots[3].Available)
}

func TestExecute_SundayClosed(t *testing.T) {
	uc := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date(8)})
	require.NoError(t, err)

	assert.False(t, resp.Bookable)
	require.Len(t, resp.Slots, domain.SlotCount)
	assert.Empty(t, availableIndexes(resp.Slots))
}

func TestExecute_PastDayClosed(t *testing.T) {
	uc := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: time.Date(2025, time.May, 30, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.False(t, resp.Bookable)
}

func TestExecute_TodayAfterCutoffClosed(t *testing.T) {
	uc := newTestUseCase(t)
	uc.timeProvider = fixedClock{now: time.Date(2025, time.June, 2, 18, 5, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date(2)})
	require.NoError(t, err)

	assert.False(t, resp.Bookable)
}

func TestExecute_FullDayBookingClosesGrid(t *testing.T) {
	uc := newTestUseCase(t, &domain.Booking{
		ID:        20,
		RoomID:    1,
		Kind:      domain.KindFullDay,
		StartDate: date(3),
		EndDate:   date(3),
		Status:    domain.StatusApproved,
	})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date(3)})
	require.NoError(t, err)

	assert.True(t, resp.Bookable)
	assert.Empty(t, availableIndexes(resp.Slots))
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 42, Date: date(3)})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
