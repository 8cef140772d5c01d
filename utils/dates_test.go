package utils_test

import (
	"testing"
	"time"

	"barberpos-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowContains_InclusiveBothEnds(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)
	w := utils.Window{From: from, To: to}

	assert.True(t, w.Contains(from), "exact start is inside")
	assert.True(t, w.Contains(to), "exact end is inside")
	assert.True(t, w.Contains(from.Add(time.Hour)))

	assert.False(t, w.Contains(from.Add(-time.Microsecond)), "just before start is outside")
	assert.False(t, w.Contains(to.Add(time.Microsecond)), "just after end is outside")
}

func TestParseWindow(t *testing.T) {
	w, err := utils.ParseWindow("2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), w.From)
	assert.Equal(t, 31, w.To.Day())
	assert.Equal(t, 23, w.To.Hour())
	// Whole-day window: one nanosecond later is next month
	assert.Equal(t, time.September, w.To.Add(time.Nanosecond).Month())
}

func TestParseWindow_Errors(t *testing.T) {
	_, err := utils.ParseWindow("01-08-2026", "")
	assert.Error(t, err)

	_, err = utils.ParseWindow("2026-08-31", "2026-08-01")
	assert.Error(t, err, "end before start")
}

func TestParseWindow_DefaultsToToday(t *testing.T) {
	w, err := utils.ParseWindow("", "")
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, utils.BeginningOfDay(now), w.From)
	assert.True(t, w.Contains(now))
}

func TestWindowLabel(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)

	assert.Equal(t, "20260801-20260831", utils.Window{From: from, To: to}.Label())
	assert.Equal(t, "20260801", utils.Window{From: from, To: utils.EndOfDay(from)}.Label())
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 8, 1, 23, 0, 0, 0, time.Local)
	end := time.Date(2026, 8, 4, 1, 0, 0, 0, time.Local)
	assert.Equal(t, 3, utils.DaysBetween(start, end))
}
