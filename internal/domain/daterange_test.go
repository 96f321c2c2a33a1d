package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, startDay, endDay int) DateRange {
	t.Helper()
	r, err := NewDateRange(
		time.Date(2026, 3, startDay, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, endDay, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{name: "multi day", start: day, end: day.AddDate(0, 0, 6)},
		{name: "single day", start: day, end: day},
		{name: "zero start", start: time.Time{}, end: day, wantErr: ErrRangeDateRequired},
		{name: "zero end", start: day, end: time.Time{}, wantErr: ErrRangeDateRequired},
		{name: "inverted", start: day.AddDate(0, 0, 1), end: day, wantErr: ErrInvalidRangeBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDateRange(tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewDateRange_TruncatesTimeOfDay(t *testing.T) {
	r, err := NewDateRange(
		time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 9, 15, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), r.Start())
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), r.End())

	// Один и тот же день в разное время остаётся однодневным диапазоном
	sameDay, err := NewDateRange(
		time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 14, 1, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, sameDay.Days())
}

func TestDateRange_Days(t *testing.T) {
	assert.Equal(t, 1, mustRange(t, 14, 14).Days())
	assert.Equal(t, 7, mustRange(t, 14, 20).Days())
}

func TestDateRange_DaysAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 8 марта 2026 - переход на летнее время: между полуночами 7 и 9
	// марта проходит 47 часов, но календарных дней всё равно три
	spring, err := NewDateRange(
		time.Date(2026, 3, 7, 0, 0, 0, 0, loc),
		time.Date(2026, 3, 9, 0, 0, 0, 0, loc),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, spring.Days())

	// 1 ноября 2026 - переход на зимнее время, 49 часов между полуночами
	fall, err := NewDateRange(
		time.Date(2026, 10, 31, 0, 0, 0, 0, loc),
		time.Date(2026, 11, 2, 0, 0, 0, 0, loc),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, fall.Days())
}

func TestDateRange_Overlaps(t *testing.T) {
	base := mustRange(t, 10, 14)

	// Замкнутая семантика: общий граничный день считается пересечением
	assert.True(t, base.Overlaps(mustRange(t, 14, 20)))
	assert.True(t, base.Overlaps(mustRange(t, 5, 10)))
	assert.True(t, base.Overlaps(mustRange(t, 11, 12)))

	assert.False(t, base.Overlaps(mustRange(t, 15, 20)))
	assert.False(t, base.Overlaps(DateRange{}))
	assert.False(t, DateRange{}.Overlaps(base))
}

func TestDateRange_IsAdjacent(t *testing.T) {
	base := mustRange(t, 10, 14)

	assert.True(t, base.IsAdjacent(mustRange(t, 15, 20)))
	assert.True(t, mustRange(t, 15, 20).IsAdjacent(base))

	// Общий день - это пересечение, а не смежность
	assert.False(t, base.IsAdjacent(mustRange(t, 14, 20)))
	assert.False(t, base.IsAdjacent(mustRange(t, 16, 20)))
}

func TestDateRange_Contains(t *testing.T) {
	r := mustRange(t, 10, 14)

	// Обе границы включены
	assert.True(t, r.ContainsDate(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.ContainsDate(time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)))
	assert.True(t, r.ContainsDate(time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)))
	assert.False(t, r.ContainsDate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.ContainsDate(time.Time{}))

	assert.True(t, r.ContainsRange(r))
	assert.True(t, r.ContainsRange(mustRange(t, 11, 13)))
	assert.False(t, r.ContainsRange(mustRange(t, 9, 12)))
	assert.False(t, r.ContainsRange(DateRange{}))
}

func TestDateRange_ContainsSlot(t *testing.T) {
	r := mustRange(t, 10, 14)

	slot, err := NewTimeSlot(
		time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.True(t, r.ContainsSlot(slot))

	outside, err := NewTimeSlot(
		time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 20, 11, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.False(t, r.ContainsSlot(outside))

	assert.False(t, r.ContainsSlot(TimeSlot{}))
}

func TestDateRange_String(t *testing.T) {
	assert.Equal(t, "2026-03-14 ~ 2026-03-20 (7일)", mustRange(t, 14, 20).String())
}
