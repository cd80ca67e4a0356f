package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/notifier"
)

// Тестовые заглушки зависимостей usecase

type stubBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
}

func (s *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.nextID++
	b.ID = s.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	s.bookings = append(s.bookings, b)
	return b, nil
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

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubNotifier struct {
	events []notifier.Event
}

func (s *stubNotifier) NotifyAsync(event notifier.Event) {
	s.events = append(s.events, event)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// now = понедельник 2025-06-02, 10:00 UTC
var testNow = time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*UseCase, *stubBookingRepo, *stubNotifier) {
	t.Helper()

	bookings := &stubBookingRepo{}
	rooms := &stubRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Большая переговорка", Capacity: 25, Category: domain.CategoryConference},
	}}
	events := &stubNotifier{}

	uc := NewUseCase(bookings, rooms, events, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}

	return uc, bookings, events
}

func validRequest() *Request {
	return &Request{
		Actor: domain.Actor{
			ID:    7,
			Email: "alice@corp.example",
			Name:  "Alice",
			Role:  domain.RoleUser,
		},
		RoomID:        1,
		Kind:          domain.KindHourly,
		StartDate:     time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		DurationSlots: 2,
		Title:         "Планирование спринта",
		Attendees:     5,
	}
}

func TestExecute_Success(t *testing.T) {
	uc, repo, events := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Новое бронирование всегда pending
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(7), resp.OrganizerID)
	assert.Equal(t, "alice@corp.example", resp.OrganizerEmail)
	require.Len(t, repo.bookings, 1)

	// Уведомление отправлено после успешного создания
	require.Len(t, events.events, 1)
	assert.Equal(t, notifier.EventBookingCreated, events.events[0].Type)
	assert.Equal(t, resp.ID, events.events[0].BookingID)
}

func TestExecute_UnauthenticatedActor(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	req := validRequest()
	req.Actor = domain.Actor{Role: domain.RoleAnonymous}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	req := validRequest()
	req.RoomID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InvalidSlot(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	// "19:00" вне сетки 08:00-18:00
	req := validRequest()
	req.StartTime = "19:00"
	req.DurationSlots = 1

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_RangeExceeded(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	// 17:00 (индекс 9) + 3 слота выходит за последний слот дня
	req := validRequest()
	req.StartTime = "17:00"
	req.DurationSlots = 3

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRangeExceeded)
}

func TestExecute_WeekendBlocked(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	// 2025-06-08 - воскресенье; блокируется независимо от конфликтов
	req := validRequest()
	req.StartDate = time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrWeekendBlocked)
}

func TestExecute_MultiDaySpanMayCrossSunday(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	// Диапазон пятница-понедельник захватывает воскресенье; блокируется
	// только воскресный день начала, внутренние дни диапазон просто несет
	req := validRequest()
	req.Kind = domain.KindMultiDay
	req.StartDate = time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)
	req.EndDate = time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	req.StartTime = ""
	req.DurationSlots = 0

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.EndDate, resp.EndDate)
}

func TestExecute_Weekly(t *testing.T) {
	weeklyRequest := func(start time.Time) *Request {
		req := validRequest()
		req.Kind = domain.KindWeekly
		req.StartDate = start
		req.StartTime = ""
		req.DurationSlots = 0
		return req
	}

	t.Run("covers seven days from the start date", func(t *testing.T) {
		uc, repo, _ := newTestUseCase(t)

		monday := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Execute(context.Background(), weeklyRequest(monday))
		require.NoError(t, err)
		assert.Equal(t, monday, resp.StartDate)
		assert.Equal(t, monday.AddDate(0, 0, 6), resp.EndDate)
		require.Len(t, repo.bookings, 1)
		assert.Equal(t, domain.KindWeekly, repo.bookings[0].Kind)
	})

	t.Run("bookable from every start weekday except Sunday", func(t *testing.T) {
		// 2025-06-03 (вт) .. 2025-06-09 (пн): все семь дней недели
		for day := 3; day <= 9; day++ {
			uc, _, _ := newTestUseCase(t)

			start := time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
			_, err := uc.Execute(context.Background(), weeklyRequest(start))
			if start.Weekday() == time.Sunday {
				assert.ErrorIs(t, err, ErrWeekendBlocked)
			} else {
				assert.NoError(t, err)
			}
		}
	})

	t.Run("blocks the whole occupied week", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		monday := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
		_, err := uc.Execute(context.Background(), weeklyRequest(monday))
		require.NoError(t, err)

		req := validRequest()
		req.StartDate = monday.AddDate(0, 0, 4) // пятница внутри занятой недели
		_, err = uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotConflict)
	})
}

func TestExecute_PastSlot(t *testing.T) {
	t.Run("hourly slot earlier today", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		req := validRequest()
		req.StartDate = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
		req.StartTime = "09:00"
		req.DurationSlots = 1

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPastSlot)
	})

	t.Run("hourly slot later today is fine", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		req := validRequest()
		req.StartDate = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
		req.StartTime = "11:00"
		req.DurationSlots = 1

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("full-day booking today is exempt from the time check", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		// Дата-гранулярные виды не проверяют время - сегодня еще не прошлое
		req := validRequest()
		req.Kind = domain.KindFullDay
		req.StartDate = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
		req.StartTime = ""
		req.DurationSlots = 0

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("full-day booking yesterday is past", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		req := validRequest()
		req.Kind = domain.KindFullDay
		req.StartDate = time.Date(2025, time.May, 30, 0, 0, 0, 0, time.UTC)
		req.StartTime = ""
		req.DurationSlots = 0

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPastSlot)
	})
}

func TestExecute_SlotConflict(t *testing.T) {
	uc, repo, events := newTestUseCase(t)

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Пересекающийся кандидат: 11:00 попадает в [10:00, 12:00)
	req := validRequest()
	req.StartTime = "11:00"
	req.DurationSlots = 1

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, repo.bookings, 1)

	// Уведомление только об успешном создании
	require.Len(t, events.events, 1)
	assert.Equal(t, first.ID, events.events[0].BookingID)
}

func TestExecute_RejectedBookingFreesSlot(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Отклоняем созданное бронирование прямо в сторадже
	repo.bookings[0].Status = domain.StatusRejected

	// Тот же слот снова доступен
	again, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, resp.ID, again.ID)
}

func TestExecute_PendingBookingHoldsSlot(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Pending резервирует слот до явного отклонения
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_FullDayBlocksEveryHourlySlot(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	fullDay := validRequest()
	fullDay.Kind = domain.KindFullDay
	fullDay.StartTime = ""
	fullDay.DurationSlots = 0

	_, err := uc.Execute(context.Background(), fullDay)
	require.NoError(t, err)

	for _, start := range domain.SlotTimes() {
		req := validRequest()
		req.StartTime = start
		req.DurationSlots = 1

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotConflict, "slot %s must be blocked", start)
	}
}

func TestExecute_CapacityIsSoftLimit(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	// Превышение вместимости не отклоняет бронирование
	req := validRequest()
	req.Attendees = 100

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}
