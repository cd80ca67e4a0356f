package edit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
)

// Тестовые заглушки зависимостей usecase

type stubBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (s *stubBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := s.bookings[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
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

func (s *stubBookingRepo) Update(_ context.Context, id int64, patch domain.BookingPatch) error {
	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Kind = patch.Kind
	b.StartDate = patch.StartDate
	b.EndDate = patch.EndDate
	b.StartTime = patch.StartTime
	b.DurationSlots = patch.DurationSlots
	b.Title = patch.Title
	b.OrganizerName = patch.OrganizerName
	b.OrganizerEmail = patch.OrganizerEmail
	b.Attendees = patch.Attendees
	b.Description = patch.Description
	b.UpdatedAt = time.Now()
	return nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func date(day int) time.Time {
	return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
}

func ownedBooking() *domain.Booking {
	return &domain.Booking{
		ID:             10,
		RoomID:         1,
		Kind:           domain.KindHourly,
		StartDate:      date(3),
		EndDate:        date(3),
		StartTime:      "10:00",
		DurationSlots:  2,
		Title:          "Планирование спринта",
		OrganizerID:    7,
		OrganizerName:  "Alice",
		OrganizerEmail: "alice@corp.example",
		Attendees:      5,
		Status:         domain.StatusApproved,
	}
}

func newTestUseCase(t *testing.T, seed ...*domain.Booking) (*UseCase, *stubBookingRepo) {
	t.Helper()

	repo := &stubBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range seed {
		repo.bookings[b.ID] = b
	}

	uc := NewUseCase(repo, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}

	return uc, repo
}

func validRequest() *Request {
	return &Request{
		Actor: domain.Actor{
			ID:    7,
			Email: "alice@corp.example",
			Name:  "Alice",
			Role:  domain.RoleUser,
		},
		BookingID:      10,
		Kind:           domain.KindHourly,
		StartDate:      date(4),
		StartTime:      "14:00",
		DurationSlots:  1,
		Title:          "Планирование спринта (перенос)",
		OrganizerName:  "Alice",
		OrganizerEmail: "alice@corp.example",
		Attendees:      5,
	}
}

func TestExecute_Success(t *testing.T) {
	uc, repo := newTestUseCase(t, ownedBooking())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, date(4), resp.StartDate)
	assert.Equal(t, "14:00", string(resp.StartTime))
	assert.Equal(t, 1, resp.DurationSlots)

	// Статус согласования через редактирование не меняется
	assert.Equal(t, string(domain.StatusApproved), resp.Status)
	assert.Equal(t, domain.StatusApproved, repo.bookings[10].Status)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_NotOwnerNotManager(t *testing.T) {
	uc, _ := newTestUseCase(t, ownedBooking())

	req := validRequest()
	req.Actor = domain.Actor{
		ID:    99,
		Email: "bob@corp.example",
		Name:  "Bob",
		Role:  domain.RoleUser,
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestExecute_RoomAdminCanEdit(t *testing.T) {
	uc, _ := newTestUseCase(t, ownedBooking())

	req := validRequest()
	req.Actor = domain.Actor{
		ID:           3,
		Email:        "admin@corp.example",
		Name:         "Carol",
		Role:         domain.RoleRoomAdmin,
		ManagedRooms: []int64{1},
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, date(4), resp.StartDate)
}

func TestExecute_GlobalAdminCanEdit(t *testing.T) {
	uc, _ := newTestUseCase(t, ownedBooking())

	req := validRequest()
	req.Actor = domain.Actor{
		ID:    1,
		Email: "root@corp.example",
		Name:  "Root",
		Role:  domain.RoleGlobalAdmin,
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "14:00", string(resp.StartTime))
}

func TestExecute_ConflictWithOtherBooking(t *testing.T) {
	other := &domain.Booking{
		ID:             11,
		RoomID:         1,
		Kind:           domain.KindHourly,
		StartDate:      date(4),
		EndDate:        date(4),
		StartTime:      "14:00",
		DurationSlots:  1,
		Title:          "Другая встреча",
		OrganizerID:    8,
		OrganizerEmail: "bob@corp.example",
		Attendees:      3,
		Status:         domain.StatusPending,
	}
	uc, _ := newTestUseCase(t, ownedBooking(), other)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_NoConflictWithSelf(t *testing.T) {
	// Перенос на один слот вперед пересекается со старым расписанием
	// самого бронирования; это пересечение конфликтом не считается
	uc, _ := newTestUseCase(t, ownedBooking())

	req := validRequest()
	req.StartDate = date(3)
	req.StartTime = "11:00"
	req.DurationSlots = 2

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "11:00", string(resp.StartTime))
}

func TestExecute_RejectedDoesNotBlock(t *testing.T) {
	rejected := &domain.Booking{
		ID:             12,
		RoomID:         1,
		Kind:           domain.KindHourly,
		StartDate:      date(4),
		EndDate:        date(4),
		StartTime:      "14:00",
		DurationSlots:  3,
		Title:          "Отклоненная встреча",
		OrganizerID:    8,
		OrganizerEmail: "bob@corp.example",
		Attendees:      3,
		Status:         domain.StatusRejected,
	}
	uc, _ := newTestUseCase(t, ownedBooking(), rejected)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_InvalidSlot(t *testing.T) {
	uc, _ := newTestUseCase(t, ownedBooking())

	req := validRequest()
	req.StartTime = "14:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_RangeExceeded(t *testing.T) {
	uc, _ := newTestUseCase(t, ownedBooking())

	req := validRequest()
	req.StartTime = "17:00"
	req.DurationSlots = 3

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRangeExceeded)
}

func TestExecute_WeekendBlocked(t *testing.T) {
	uc, _ := newTestUseCase(t, ownedBooking())

	req := validRequest()
	req.StartDate = date(8) // воскресенье

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrWeekendBlocked)
}

func TestExecute_PastSlot(t *testing.T) {
	uc, _ := newTestUseCase(t, ownedBooking())

	req := validRequest()
	req.StartDate = date(2)
	req.StartTime = "08:00" // слот уже прошел относительно now = 10:00

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastSlot)
}

func TestExecute_KindChangeToFullDay(t *testing.T) {
	uc, repo := newTestUseCase(t, ownedBooking())

	req := validRequest()
	req.Kind = domain.KindFullDay
	req.StartTime = ""
	req.DurationSlots = 0

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.KindFullDay), resp.Kind)
	assert.Equal(t, date(4), repo.bookings[10].EndDate)
	assert.True(t, repo.bookings[10].StartTime.IsZero())
}

func TestExecute_KindChangeToWeekly(t *testing.T) {
	uc, repo := newTestUseCase(t, ownedBooking())

	// Недельный диапазон всегда накрывает воскресенье; блокируется
	// только воскресный день начала
	req := validRequest()
	req.Kind = domain.KindWeekly
	req.StartDate = date(9) // понедельник
	req.StartTime = ""
	req.DurationSlots = 0

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.KindWeekly), resp.Kind)
	assert.Equal(t, date(15), repo.bookings[10].EndDate)
}

func TestExecute_MultiDaySpanTooLong(t *testing.T) {
	uc, _ := newTestUseCase(t, ownedBooking())

	req := validRequest()
	req.Kind = domain.KindMultiDay
	req.StartTime = ""
	req.DurationSlots = 0
	req.StartDate = date(2)
	req.EndDate = time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_Unauthenticated(t *testing.T) {
	uc, _ := newTestUseCase(t, ownedBooking())

	req := validRequest()
	req.Actor = domain.Actor{Role: domain.RoleAnonymous}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}
