package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// ErrClockTimeIsNotConstructed is returned when validating a zero-value
// ClockTime.
var ErrClockTimeIsNotConstructed = errs.NewValueIsRequiredError(
	"clock time must be created via NewClockTime or ParseClockTime")

// ClockTime is a time-of-day value object ("HH:MM") used by blocked-time
// records. It has no date component; the blocked-interval projector combines
// it with a query date.
type ClockTime struct {
	hour   int
	minute int
	guard  guard.ConstructorGuard
}

// NewClockTime creates a validated time-of-day value. Hour must be in [0, 23]
// and minute in [0, 59].
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 {
		return ClockTime{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return ClockTime{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}

	return ClockTime{
		hour:   hour,
		minute: minute,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ParseClockTime parses a "HH:MM" string as stored on blocked-time records.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ClockTime{}, errs.NewValueIsInvalidErrorWithCause(
			"clock time", fmt.Errorf("%q is not in HH:MM format", s))
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, errs.NewValueIsInvalidErrorWithCause("clock time", err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, errs.NewValueIsInvalidErrorWithCause("clock time", err)
	}

	return NewClockTime(hour, minute)
}

// Validate checks the value was created through a constructor.
func (c ClockTime) Validate() error {
	return c.guard.Validate(ErrClockTimeIsNotConstructed)
}

// Hour returns the hour-of-day component.
func (c ClockTime) Hour() int {
	return c.hour
}

// Minute returns the minute component.
func (c ClockTime) Minute() int {
	return c.minute
}

// IsMidnight reports whether the value is exactly "00:00". A midnight end
// time on a blocked-time record means end-of-day.
func (c ClockTime) IsMidnight() bool {
	return c.hour == 0 && c.minute == 0
}

// String returns the zero-padded "HH:MM" form.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// IsEqual reports whether two clock times are the same instant of day.
func (c ClockTime) IsEqual(other ClockTime) bool {
	return c.hour == other.hour && c.minute == other.minute
}
