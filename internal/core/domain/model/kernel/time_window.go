package kernel

import (
	"fmt"
	"time"

	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// ErrTimeWindowIsNotConstructed is returned when attempting to use an
// improperly initialized TimeWindow. Windows must be created via NewTimeWindow
// so that the start-before-end invariant always holds.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow constructor")

// TimeWindow is an immutable value object representing a half-open time
// interval [start, end) with the invariant start < end.
//
// It carries the interval math the scheduling engine is built on: duration in
// hours, strict-inequality overlap tests, and duration-preserving moves. Two
// back-to-back windows (one ending exactly when the other starts) do NOT
// overlap.
//
// Example:
//
//	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
//	window, err := kernel.NewTimeWindow(start, start.Add(2*time.Hour))
//	if err != nil {
//	    // end did not come strictly after start
//	}
//	window.DurationHours() // 2
type TimeWindow struct {
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a validated time window. It fails with
// errs.ErrIntervalIsInvalid when end is at or before start, which signals
// corrupted data upstream rather than a user mistake.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("end")
	}
	if !end.After(start) {
		return TimeWindow{}, errs.NewIntervalIsInvalidError("time window", start, end)
	}

	return TimeWindow{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the window was created through NewTimeWindow.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the inclusive start of the window.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the exclusive end of the window.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Duration returns the window length.
func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// DurationHours returns the window length in hours, fractional hours
// included.
func (w TimeWindow) DurationHours() float64 {
	return w.end.Sub(w.start).Seconds() / 3600
}

// Overlaps reports whether two windows share any instant. The comparison is
// strict on both sides, so a window ending exactly when another starts is not
// an overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// MoveTo returns a new window starting at newStart with the same duration.
// Rescheduling never changes a job's length, only its position.
func (w TimeWindow) MoveTo(newStart time.Time) (TimeWindow, error) {
	if err := w.Validate(); err != nil {
		return TimeWindow{}, err
	}
	return NewTimeWindow(newStart, newStart.Add(w.Duration()))
}

// StartsOnDate reports whether the window's start falls on the given calendar
// date.
func (w TimeWindow) StartsOnDate(date time.Time) bool {
	return SameDate(w.start, date)
}

// IsEqual reports whether both windows cover exactly the same interval.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end)
}

// String implements fmt.Stringer for logging.
func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// SameDate reports whether two instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()
	return aYear == bYear && aMonth == bMonth && aDay == bDay
}

// SameMonth reports whether two instants fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
