package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsBookableDay(t *testing.T) {
	// 2025-06-08 - воскресенье
	sunday := date(2025, time.June, 8)
	assert.False(t, IsBookableDay(sunday))

	// Все остальные дни недели доступны, включая субботу
	for offset := 1; offset <= 6; offset++ {
		day := sunday.AddDate(0, 0, offset)
		assert.True(t, IsBookableDay(day), "weekday %s must be bookable", day.Weekday())
	}

	saturday := date(2025, time.June, 7)
	assert.True(t, IsBookableDay(saturday))
}

func TestIsSlotInPast(t *testing.T) {
	now := time.Date(2025, time.June, 2, 12, 30, 0, 0, time.UTC)

	t.Run("earlier date is past regardless of slot", func(t *testing.T) {
		assert.True(t, IsSlotInPast(date(2025, time.June, 1), "18:00", now))
	})

	t.Run("later date is never past", func(t *testing.T) {
		assert.False(t, IsSlotInPast(date(2025, time.June, 3), "08:00", now))
	})

	t.Run("today compares the slot instant", func(t *testing.T) {
		today := date(2025, time.June, 2)
		assert.True(t, IsSlotInPast(today, "12:00", now))
		assert.False(t, IsSlotInPast(today, "13:00", now))
	})

	t.Run("slot instant equal to now is not past", func(t *testing.T) {
		exactly := time.Date(2025, time.June, 2, 13, 0, 0, 0, time.UTC)
		assert.False(t, IsSlotInPast(date(2025, time.June, 2), "13:00", exactly))
	})
}

func TestCanOfferBookingDay(t *testing.T) {
	t.Run("past days are closed", func(t *testing.T) {
		now := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
		assert.False(t, CanOfferBookingDay(date(2025, time.June, 1), now))
	})

	t.Run("future days are open", func(t *testing.T) {
		now := time.Date(2025, time.June, 2, 23, 0, 0, 0, time.UTC)
		assert.True(t, CanOfferBookingDay(date(2025, time.June, 3), now))
	})

	t.Run("today is open before the 18:00 cutoff", func(t *testing.T) {
		today := date(2025, time.June, 2)
		assert.True(t, CanOfferBookingDay(today, time.Date(2025, time.June, 2, 17, 59, 0, 0, time.UTC)))
		assert.False(t, CanOfferBookingDay(today, time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC)))
		assert.False(t, CanOfferBookingDay(today, time.Date(2025, time.June, 2, 21, 15, 0, 0, time.UTC)))
	})
}
