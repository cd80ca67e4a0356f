package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hourlyBooking(id int64, day time.Time, start types.TimeString, slots int, status BookingStatus) *Booking {
	return &Booking{
		ID:            id,
		RoomID:        1,
		Kind:          KindHourly,
		StartDate:     day,
		EndDate:       day,
		StartTime:     start,
		DurationSlots: slots,
		Status:        status,
	}
}

func fullDayBooking(id int64, day time.Time, status BookingStatus) *Booking {
	return &Booking{
		ID:        id,
		RoomID:    1,
		Kind:      KindFullDay,
		StartDate: day,
		EndDate:   day,
		Status:    status,
	}
}

func TestFindConflict_HourlyOverlap(t *testing.T) {
	monday := date(2025, time.June, 2)

	// Бронирование A: 09:00, 2 слота - занимает индексы [1, 3)
	existing := []*Booking{hourlyBooking(1, monday, "09:00", 2, StatusApproved)}

	t.Run("overlapping candidate is rejected", func(t *testing.T) {
		// Кандидат B: 10:00, 1 слот - индекс 2 попадает в [1, 3)
		conflict, err := FindConflict(existing, Candidate{
			Kind:          KindHourly,
			StartDate:     monday,
			StartTime:     "10:00",
			DurationSlots: 1,
		})
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, int64(1), conflict.ID)
	})

	t.Run("adjacent candidate is accepted", func(t *testing.T) {
		// Кандидат C: 11:00 - интервал [3, 4) не пересекается с [1, 3)
		ok, err := CanBook(existing, Candidate{
			Kind:          KindHourly,
			StartDate:     monday,
			StartTime:     "11:00",
			DurationSlots: 1,
		})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("candidate ending at existing start is accepted", func(t *testing.T) {
		// [0, 1) граничит с [1, 3) - полуинтервалы не пересекаются
		ok, err := CanBook(existing, Candidate{
			Kind:          KindHourly,
			StartDate:     monday,
			StartTime:     "08:00",
			DurationSlots: 1,
		})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("candidate spanning over existing is rejected", func(t *testing.T) {
		conflict, err := FindConflict(existing, Candidate{
			Kind:          KindHourly,
			StartDate:     monday,
			StartTime:     "08:00",
			DurationSlots: 5,
		})
		require.NoError(t, err)
		assert.NotNil(t, conflict)
	})

	t.Run("other date does not conflict", func(t *testing.T) {
		ok, err := CanBook(existing, Candidate{
			Kind:          KindHourly,
			StartDate:     monday.AddDate(0, 0, 1),
			StartTime:     "09:00",
			DurationSlots: 2,
		})
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestFindConflict_HourlyValidation(t *testing.T) {
	monday := date(2025, time.June, 2)

	t.Run("unknown start time", func(t *testing.T) {
		// "19:00" вне сетки 08:00-18:00
		_, err := FindConflict(nil, Candidate{
			Kind:          KindHourly,
			StartDate:     monday,
			StartTime:     "19:00",
			DurationSlots: 1,
		})
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})

	t.Run("duration past the last slot", func(t *testing.T) {
		// 17:00 это индекс 9; 3 слота дают endIndex 12 > 11
		_, err := FindConflict(nil, Candidate{
			Kind:          KindHourly,
			StartDate:     monday,
			StartTime:     "17:00",
			DurationSlots: 3,
		})
		assert.ErrorIs(t, err, ErrRangeExceeded)
	})

	t.Run("last slot exactly fits", func(t *testing.T) {
		ok, err := CanBook(nil, Candidate{
			Kind:          KindHourly,
			StartDate:     monday,
			StartTime:     "18:00",
			DurationSlots: 1,
		})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := FindConflict(nil, Candidate{
			Kind:          KindHourly,
			StartDate:     monday,
			StartTime:     "09:00",
			DurationSlots: 0,
		})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestFindConflict_NonHourlyExclusivity(t *testing.T) {
	tuesday := date(2025, time.June, 3)

	// Бронирование D: full-day на 2025-06-03
	existing := []*Booking{fullDayBooking(2, tuesday, StatusPending)}

	t.Run("every hourly slot on the covered day is blocked", func(t *testing.T) {
		for _, start := range SlotTimes() {
			ok, err := CanBook(existing, Candidate{
				Kind:          KindHourly,
				StartDate:     tuesday,
				StartTime:     start,
				DurationSlots: 1,
			})
			require.NoError(t, err)
			assert.False(t, ok, "slot %s must be blocked by the full-day booking", start)
		}
	})

	t.Run("full-day candidate against hourly booking is blocked", func(t *testing.T) {
		hourly := []*Booking{hourlyBooking(3, tuesday, "12:00", 1, StatusPending)}
		ok, err := CanBook(hourly, Candidate{Kind: KindFullDay, StartDate: tuesday})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("multi-day candidate touching the covered day is blocked", func(t *testing.T) {
		ok, err := CanBook(existing, Candidate{
			Kind:      KindMultiDay,
			StartDate: tuesday.AddDate(0, 0, -1),
			EndDate:   tuesday.AddDate(0, 0, 2),
		})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("multi-day candidate clear of the span is accepted", func(t *testing.T) {
		ok, err := CanBook(existing, Candidate{
			Kind:      KindMultiDay,
			StartDate: tuesday.AddDate(0, 0, 1),
			EndDate:   tuesday.AddDate(0, 0, 3),
		})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("weekly candidate spans seven days", func(t *testing.T) {
		// Weekly с 2025-06-09 занимает по 2025-06-15; бронирование на 15-е конфликтует
		monday := date(2025, time.June, 9)
		lastDay := []*Booking{fullDayBooking(4, date(2025, time.June, 15), StatusApproved)}

		ok, err := CanBook(lastDay, Candidate{Kind: KindWeekly, StartDate: monday})
		require.NoError(t, err)
		assert.False(t, ok)

		dayAfter := []*Booking{fullDayBooking(5, date(2025, time.June, 16), StatusApproved)}
		ok, err = CanBook(dayAfter, Candidate{Kind: KindWeekly, StartDate: monday})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("inverted multi-day range is an error", func(t *testing.T) {
		_, err := FindConflict(nil, Candidate{
			Kind:      KindMultiDay,
			StartDate: tuesday,
			EndDate:   tuesday.AddDate(0, 0, -2),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestFindConflict_RejectedBookingsNeverBlock(t *testing.T) {
	monday := date(2025, time.June, 2)

	// Бронирование G отклонено - его слот освобожден
	existing := []*Booking{
		hourlyBooking(6, monday, "09:00", 2, StatusRejected),
		fullDayBooking(7, monday.AddDate(0, 0, 1), StatusRejected),
	}

	ok, err := CanBook(existing, Candidate{
		Kind:          KindHourly,
		StartDate:     monday,
		StartTime:     "09:00",
		DurationSlots: 2,
	})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CanBook(existing, Candidate{Kind: KindFullDay, StartDate: monday.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFindConflict_PendingBookingsBlock(t *testing.T) {
	monday := date(2025, time.June, 2)

	// Pending резервирует слот до явного отклонения
	existing := []*Booking{hourlyBooking(8, monday, "14:00", 2, StatusPending)}

	ok, err := CanBook(existing, Candidate{
		Kind:          KindHourly,
		StartDate:     monday,
		StartTime:     "15:00",
		DurationSlots: 1,
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindConflict_Idempotent(t *testing.T) {
	monday := date(2025, time.June, 2)
	existing := []*Booking{hourlyBooking(9, monday, "09:00", 2, StatusApproved)}
	candidate := Candidate{
		Kind:          KindHourly,
		StartDate:     monday,
		StartTime:     "10:00",
		DurationSlots: 1,
	}

	first, err := FindConflict(existing, candidate)
	require.NoError(t, err)
	second, err := FindConflict(existing, candidate)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// Активные бронирования, принятые последовательной проверкой CanBook,
// попарно не пересекаются по (дата, слот)
func TestNoDoubleBookingInvariant(t *testing.T) {
	monday := date(2025, time.June, 2)

	candidates := []Candidate{
		{Kind: KindHourly, StartDate: monday, StartTime: "08:00", DurationSlots: 2},
		{Kind: KindHourly, StartDate: monday, StartTime: "09:00", DurationSlots: 1}, // конфликт
		{Kind: KindHourly, StartDate: monday, StartTime: "10:00", DurationSlots: 3},
		{Kind: KindFullDay, StartDate: monday},                                      // конфликт
		{Kind: KindFullDay, StartDate: monday.AddDate(0, 0, 1)},
		{Kind: KindHourly, StartDate: monday.AddDate(0, 0, 1), StartTime: "08:00", DurationSlots: 1}, // конфликт
		{Kind: KindHourly, StartDate: monday, StartTime: "13:00", DurationSlots: 2},
		{Kind: KindWeekly, StartDate: monday.AddDate(0, 0, 2)},
		{Kind: KindHourly, StartDate: monday.AddDate(0, 0, 3), StartTime: "12:00", DurationSlots: 1}, // конфликт с weekly
	}

	accepted := make([]*Booking, 0, len(candidates))
	var nextID int64 = 1

	for i, c := range candidates {
		ok, err := CanBook(accepted, c)
		require.NoError(t, err, "candidate %d", i)

		if !ok {
			// Каждый отказ действительно вызван пересечением
			conflict, err := FindConflict(accepted, c)
			require.NoError(t, err)
			assert.NotNil(t, conflict, "candidate %d was refused without a conflict", i)
			continue
		}

		start, end, err := c.Span()
		require.NoError(t, err)
		accepted = append(accepted, &Booking{
			ID:            nextID,
			RoomID:        1,
			Kind:          c.Kind,
			StartDate:     start,
			EndDate:       end,
			StartTime:     c.StartTime,
			DurationSlots: c.DurationSlots,
			Status:        StatusPending,
		})
		nextID++

		assertPairwiseDisjoint(t, accepted)
	}

	assert.Len(t, accepted, 5)
}

// assertPairwiseDisjoint проверяет дизъюнктность множеств (дата, индекс слота)
// всех пар активных бронирований
func assertPairwiseDisjoint(t *testing.T, bookings []*Booking) {
	t.Helper()

	occupied := map[string]int64{}
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		for d := DateOnly(b.StartDate); !d.After(DateOnly(b.EndDate)); d = d.AddDate(0, 0, 1) {
			startIdx, endIdx := 0, SlotCount
			if b.IsHourly() {
				startIdx = SlotIndex(b.StartTime)
				require.NotEqual(t, SlotNotFound, startIdx)
				endIdx = startIdx + b.DurationSlots
			}
			for i := startIdx; i < endIdx; i++ {
				key := d.Format(DateFormat) + "#" + SlotTime(i).String()
				if other, taken := occupied[key]; taken {
					t.Fatalf("bookings %d and %d both occupy %s", other, b.ID, key)
				}
				occupied[key] = b.ID
			}
		}
	}
}
