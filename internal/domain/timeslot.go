package domain

import (
	"fmt"
	"time"
)

// TimeSlot is an immutable time interval confined to a single calendar day.
// Point containment is half-open [start, end): an instant exactly at the end
// of one slot belongs to the next slot, not both. The zero value is treated
// as "no slot": every predicate taking it returns false.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot creates a validated slot. Start must be strictly before end
// and both must fall on the same calendar date.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() {
		return TimeSlot{}, ErrSlotTimeRequired
	}
	if !start.Before(end) {
		return TimeSlot{}, fmt.Errorf("%w: start=%s end=%s",
			ErrInvalidSlotBounds, start.Format(DateTimeFormat), end.Format(DateTimeFormat))
	}
	if !isSameDate(start, end) {
		return TimeSlot{}, fmt.Errorf("%w: start=%s end=%s",
			ErrSlotCrossesMidnight, start.Format(DateTimeFormat), end.Format(DateTimeFormat))
	}
	return TimeSlot{start: start, end: end}, nil
}

// TimeSlotOfDuration creates a slot starting at start and lasting the given
// number of minutes. Non-positive durations fail.
func TimeSlotOfDuration(start time.Time, minutes int) (TimeSlot, error) {
	if minutes <= 0 {
		return TimeSlot{}, fmt.Errorf("%w: got %d minutes", ErrNonPositiveDuration, minutes)
	}
	return NewTimeSlot(start, start.Add(time.Duration(minutes)*time.Minute))
}

// Start returns the slot start instant.
func (t TimeSlot) Start() time.Time {
	return t.start
}

// End returns the slot end instant.
func (t TimeSlot) End() time.Time {
	return t.end
}

// IsZero reports whether the slot is the absent value.
func (t TimeSlot) IsZero() bool {
	return t.start.IsZero() && t.end.IsZero()
}

// Duration returns the slot length.
func (t TimeSlot) Duration() time.Duration {
	return t.end.Sub(t.start)
}

// DurationMinutes returns the slot length in whole minutes.
func (t TimeSlot) DurationMinutes() int {
	return int(t.Duration() / time.Minute)
}

// Overlaps reports whether two slots share any interior instant.
// Strict inequalities: slots that only touch at a boundary do NOT overlap,
// so back-to-back reservations (10:00-11:00 and 11:00-12:00) never conflict.
func (t TimeSlot) Overlaps(other TimeSlot) bool {
	if t.IsZero() || other.IsZero() {
		return false
	}
	return t.start.Before(other.end) && other.start.Before(t.end)
}

// IsAdjacent reports whether two slots touch exactly at a boundary.
// Mutually exclusive with Overlaps by construction.
func (t TimeSlot) IsAdjacent(other TimeSlot) bool {
	if t.IsZero() || other.IsZero() {
		return false
	}
	return t.end.Equal(other.start) || other.end.Equal(t.start)
}

// ContainsInstant reports whether the instant lies inside the slot,
// half-open: start included, end excluded.
func (t TimeSlot) ContainsInstant(instant time.Time) bool {
	if t.IsZero() || instant.IsZero() {
		return false
	}
	return !instant.Before(t.start) && instant.Before(t.end)
}

// ContainsSlot reports whether other lies entirely within t.
// Closed containment: a slot contains itself and sub-slots sharing a boundary.
func (t TimeSlot) ContainsSlot(other TimeSlot) bool {
	if t.IsZero() || other.IsZero() {
		return false
	}
	return !other.start.Before(t.start) && !other.end.After(t.end)
}

// IsBefore reports whether t ends at or before other starts.
// Ordering is partial: overlapping slots are unordered, both
// IsBefore and IsAfter return false for them.
func (t TimeSlot) IsBefore(other TimeSlot) bool {
	if t.IsZero() || other.IsZero() {
		return false
	}
	return !t.end.After(other.start)
}

// IsAfter reports whether t starts at or after other ends.
func (t TimeSlot) IsAfter(other TimeSlot) bool {
	if t.IsZero() || other.IsZero() {
		return false
	}
	return !t.start.Before(other.end)
}

// WithStart returns a copy with a new start, re-validated.
func (t TimeSlot) WithStart(start time.Time) (TimeSlot, error) {
	return NewTimeSlot(start, t.end)
}

// WithEnd returns a copy with a new end, re-validated.
func (t TimeSlot) WithEnd(end time.Time) (TimeSlot, error) {
	return NewTimeSlot(t.start, end)
}

// MoveBy shifts the whole slot by the given number of minutes.
// Negative minutes move the slot earlier. The result is re-validated,
// so a move that crosses midnight fails.
func (t TimeSlot) MoveBy(minutes int) (TimeSlot, error) {
	d := time.Duration(minutes) * time.Minute
	return NewTimeSlot(t.start.Add(d), t.end.Add(d))
}

// Extend lengthens the slot by the given number of minutes.
// Negative magnitudes are rejected.
func (t TimeSlot) Extend(minutes int) (TimeSlot, error) {
	if minutes < 0 {
		return TimeSlot{}, fmt.Errorf("%w: got %d minutes", ErrNegativeAdjustment, minutes)
	}
	return NewTimeSlot(t.start, t.end.Add(time.Duration(minutes)*time.Minute))
}

// Shorten shrinks the slot by the given number of minutes.
// Negative magnitudes are rejected; shortening to or past the start fails.
func (t TimeSlot) Shorten(minutes int) (TimeSlot, error) {
	if minutes < 0 {
		return TimeSlot{}, fmt.Errorf("%w: got %d minutes", ErrNegativeAdjustment, minutes)
	}
	newEnd := t.end.Add(-time.Duration(minutes) * time.Minute)
	if !t.start.Before(newEnd) {
		return TimeSlot{}, fmt.Errorf("%w: shortening by %d minutes leaves no duration",
			ErrNonPositiveDuration, minutes)
	}
	return NewTimeSlot(t.start, newEnd)
}

// IsPast reports whether the slot has entirely passed at the given instant.
func (t TimeSlot) IsPast(now time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.end.After(now)
}

// IsFuture reports whether the slot has not started yet at the given instant.
func (t TimeSlot) IsFuture(now time.Time) bool {
	if t.IsZero() {
		return false
	}
	return t.start.After(now)
}

// IsCurrent reports whether the given instant falls inside the slot.
func (t TimeSlot) IsCurrent(now time.Time) bool {
	return t.ContainsInstant(now)
}

// IsToday reports whether the slot lies on the same calendar date as now.
func (t TimeSlot) IsToday(now time.Time) bool {
	if t.IsZero() {
		return false
	}
	return isSameDate(t.start, now)
}

// String renders the slot as "yyyy-MM-dd HH:mm ~ yyyy-MM-dd HH:mm (N분)".
// Downstream receipt rendering parses this format; treat it as stable.
func (t TimeSlot) String() string {
	return fmt.Sprintf("%s ~ %s (%d분)",
		t.start.Format(DateTimeFormat), t.end.Format(DateTimeFormat), t.DurationMinutes())
}

// isSameDate проверяет, что два момента относятся к одной календарной дате
func isSameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
