package job

import (
	"errors"
	"fmt"

	"fieldops/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a status change skips a step, moves
// backward, or leaves a terminal status. Wrap details around it so callers
// can classify with errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a job. It implements a state
// machine with forward-only, single-step transitions:
//
//	Scheduled -> Dispatched -> OnTheWay -> InProgress -> Completed
//
// Cancelled is reachable from any non-terminal status. Completed and
// Cancelled are terminal.
//
// Status is a value object that validates transitions and provides the wire
// strings used by persistence and the HTTP API.
type Status int

const (
	// Unknown represents an invalid or undefined status. This value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Scheduled is the initial status when a job is booked.
	Scheduled

	// Dispatched indicates the job has been handed to its assigned workers.
	Dispatched

	// OnTheWay indicates a worker is en route to the job site.
	OnTheWay

	// InProgress indicates work at the job site has started.
	InProgress

	// Completed indicates the work is done. Terminal.
	Completed

	// Cancelled indicates the job was called off. Terminal.
	Cancelled
)

// getStatusStrings returns the wire string for every Status value, including
// Unknown for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Scheduled:  "scheduled",
		Dispatched: "dispatched",
		OnTheWay:   "on-the-way",
		InProgress: "in-progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns only the valid Status values, to support
// validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Scheduled:  "scheduled",
		Dispatched: "dispatched",
		OnTheWay:   "on-the-way",
		InProgress: "in-progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a wire string into a Status. Used at the HTTP
// boundary and when restoring jobs from persistence rows that store strings.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire string for the status. Implements fmt.Stringer and
// is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// TransitionTo validates a requested status change and returns the new
// status.
//
// Valid transitions:
//   - one forward step (Scheduled -> Dispatched, ..., InProgress -> Completed)
//   - any non-terminal status -> Cancelled
//
// Everything else, including backward moves, skipped steps, and transitions
// out of a terminal status, fails with ErrInvalidTransition.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, s)
	}

	if next == Cancelled || next == s+1 {
		return next, nil
	}

	return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
}
