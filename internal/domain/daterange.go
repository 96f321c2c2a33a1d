package domain

import (
	"fmt"
	"time"
)

// DateRange is an immutable interval of whole calendar days,
// inclusive on both ends. Unlike TimeSlot it uses closed semantics
// throughout: whole-day ranges naturally include both boundary days,
// while sub-day slots must allow back-to-back scheduling. That
// asymmetry is deliberate.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange creates a validated range. Start must not be after end;
// a single-day range (start == end) is allowed. Time-of-day components
// are truncated to midnight in the start's location.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrRangeDateRequired
	}
	startDay := truncateToDate(start)
	endDay := truncateToDate(end)
	if startDay.After(endDay) {
		return DateRange{}, fmt.Errorf("%w: start=%s end=%s",
			ErrInvalidRangeBounds, startDay.Format(DateFormat), endDay.Format(DateFormat))
	}
	return DateRange{start: startDay, end: endDay}, nil
}

// SingleDateRange creates a range covering exactly one day.
func SingleDateRange(date time.Time) (DateRange, error) {
	return NewDateRange(date, date)
}

// Start returns the first day of the range.
func (r DateRange) Start() time.Time {
	return r.start
}

// End returns the last day of the range.
func (r DateRange) End() time.Time {
	return r.end
}

// IsZero reports whether the range is the absent value.
func (r DateRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// Days returns the number of calendar days covered, boundary days
// included. Counted on the date components, so a DST transition inside
// the range does not shift the count.
func (r DateRange) Days() int {
	start := time.Date(r.start.Year(), r.start.Month(), r.start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.end.Year(), r.end.Month(), r.end.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// Overlaps reports whether two ranges share at least one day.
// Closed semantics: ranges meeting on a boundary day DO overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.IsZero() || other.IsZero() {
		return false
	}
	return !r.start.After(other.end) && !other.start.After(r.end)
}

// IsAdjacent reports whether the ranges touch at day granularity:
// one ends exactly the day before the other starts.
func (r DateRange) IsAdjacent(other DateRange) bool {
	if r.IsZero() || other.IsZero() {
		return false
	}
	return r.end.AddDate(0, 0, 1).Equal(other.start) ||
		other.end.AddDate(0, 0, 1).Equal(r.start)
}

// ContainsDate reports whether the day lies within the range, inclusive.
func (r DateRange) ContainsDate(date time.Time) bool {
	if r.IsZero() || date.IsZero() {
		return false
	}
	day := truncateToDate(date)
	return !day.Before(r.start) && !day.After(r.end)
}

// ContainsRange reports whether other lies entirely within r, inclusive.
func (r DateRange) ContainsRange(other DateRange) bool {
	if r.IsZero() || other.IsZero() {
		return false
	}
	return !other.start.Before(r.start) && !other.end.After(r.end)
}

// ContainsSlot reports whether a time slot's date falls within the range.
func (r DateRange) ContainsSlot(slot TimeSlot) bool {
	if slot.IsZero() {
		return false
	}
	return r.ContainsDate(slot.Start())
}

// String renders the range as "yyyy-MM-dd ~ yyyy-MM-dd (N일)".
func (r DateRange) String() string {
	return fmt.Sprintf("%s ~ %s (%d일)",
		r.start.Format(DateFormat), r.end.Format(DateFormat), r.Days())
}

// truncateToDate обнуляет время, оставляя только дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
