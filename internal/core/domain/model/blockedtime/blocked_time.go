// Package blockedtime provides the BlockedTime entity: a provider- or
// worker-level availability block over a date range. Blocks are created and
// deleted by the availability-management surface; the scheduling engine reads
// them to project blocked overlays and to refuse drops into blocked slots.
package blockedtime

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// Domain errors for blocked-time operations.
var (
	// ErrBlockedTimeIsNotConstructed is returned when using an improperly
	// initialized BlockedTime.
	ErrBlockedTimeIsNotConstructed = errors.New(
		"BlockedTime must be created via NewBlockedTime constructor")
	// ErrReasonIsRequired is returned when creating a block without a reason
	// label.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
)

// BlockedTime represents an unavailability window. It covers a date range
// [fromDate, toDate] and optionally a time-of-day range within each covered
// date. When both clock times are absent the block covers the whole day.
//
// A block with a nil worker ID applies to the entire provider; otherwise only
// to the named worker.
//
// Invariants:
//   - fromDate <= toDate (same date allowed)
//   - startTime and endTime are either both present or both absent; a
//     one-sided input degrades to an all-day block
type BlockedTime struct {
	// id uniquely identifies the block
	id kernel.UUID
	// providerID identifies the provider whose calendar the block covers
	providerID kernel.UUID
	// workerID narrows the block to one worker; nil means provider-wide
	workerID *kernel.UUID
	// fromDate and toDate bound the covered date range, inclusive
	fromDate time.Time
	toDate   time.Time
	// startTime and endTime bound the blocked time of day; both nil means
	// all day
	startTime *kernel.ClockTime
	endTime   *kernel.ClockTime
	// reason labels the block for display ("vacation", "equipment service")
	reason string
	// guard ensures the block was created via the constructor
	guard guard.ConstructorGuard
}

// NewBlockedTime creates a validated availability block.
func NewBlockedTime(
	id kernel.UUID,
	providerID kernel.UUID,
	workerID *kernel.UUID,
	fromDate time.Time,
	toDate time.Time,
	startTime *kernel.ClockTime,
	endTime *kernel.ClockTime,
	reason string,
) (*BlockedTime, error) {
	b := &BlockedTime{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setProviderID(providerID),
		b.setWorkerID(workerID),
		b.setDateRange(fromDate, toDate),
		b.setTimeOfDayRange(startTime, endTime),
		b.setReason(reason),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBlockedTime reconstructs a BlockedTime from persistent storage.
func RestoreBlockedTime(
	id kernel.UUID,
	providerID kernel.UUID,
	workerID *kernel.UUID,
	fromDate time.Time,
	toDate time.Time,
	startTime *kernel.ClockTime,
	endTime *kernel.ClockTime,
	reason string,
) (*BlockedTime, error) {
	return NewBlockedTime(id, providerID, workerID, fromDate, toDate, startTime, endTime, reason)
}

// Validate ensures the block was created through NewBlockedTime.
func (b *BlockedTime) Validate() error {
	if b == nil {
		return ErrBlockedTimeIsNotConstructed
	}
	return b.guard.Validate(ErrBlockedTimeIsNotConstructed)
}

// ID returns the block's unique identifier.
func (b *BlockedTime) ID() kernel.UUID {
	return b.id
}

// ProviderID returns the identifier of the provider owning the block.
func (b *BlockedTime) ProviderID() kernel.UUID {
	return b.providerID
}

// WorkerID returns the worker the block is narrowed to, or nil for a
// provider-wide block.
func (b *BlockedTime) WorkerID() *kernel.UUID {
	return b.workerID
}

// FromDate returns the first covered date.
func (b *BlockedTime) FromDate() time.Time {
	return b.fromDate
}

// ToDate returns the last covered date, inclusive.
func (b *BlockedTime) ToDate() time.Time {
	return b.toDate
}

// StartTime returns the blocked time-of-day start, or nil for an all-day
// block.
func (b *BlockedTime) StartTime() *kernel.ClockTime {
	return b.startTime
}

// EndTime returns the blocked time-of-day end, or nil for an all-day block.
func (b *BlockedTime) EndTime() *kernel.ClockTime {
	return b.endTime
}

// Reason returns the display label.
func (b *BlockedTime) Reason() string {
	return b.reason
}

// IsAllDay reports whether the block covers the whole of each covered date.
func (b *BlockedTime) IsAllDay() bool {
	return b.startTime == nil && b.endTime == nil
}

// CoversDate reports whether the given calendar date falls inside
// [fromDate, toDate]. This is the date-range intersection the projector
// performs first; callers pass any instant on the date of interest.
func (b *BlockedTime) CoversDate(date time.Time) bool {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, date.Location())

	fy, fm, fd := b.fromDate.Date()
	from := time.Date(fy, fm, fd, 0, 0, 0, 0, b.fromDate.Location())

	ty, tm, td := b.toDate.Date()
	to := time.Date(ty, tm, td, 0, 0, 0, 0, b.toDate.Location())

	return !day.Before(from) && !day.After(to)
}

// AppliesToWorker reports whether the block constrains the given worker. A
// provider-wide block constrains everyone; a worker-level block only its
// named worker. A nil workerID asks about the provider calendar as a whole
// and matches only provider-wide blocks.
func (b *BlockedTime) AppliesToWorker(workerID *kernel.UUID) bool {
	if b.workerID == nil {
		return true
	}
	if workerID == nil {
		return false
	}
	return b.workerID.IsEqual(*workerID)
}

func (b *BlockedTime) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *BlockedTime) setProviderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("providerId", err)
	}
	b.providerID = id
	return nil
}

func (b *BlockedTime) setWorkerID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("workerId", err)
	}
	b.workerID = id
	return nil
}

func (b *BlockedTime) setDateRange(fromDate, toDate time.Time) error {
	if fromDate.IsZero() {
		return errs.NewValueIsRequiredError("fromDate")
	}
	if toDate.IsZero() {
		return errs.NewValueIsRequiredError("toDate")
	}
	if toDate.Before(fromDate) && !kernel.SameDate(fromDate, toDate) {
		return errs.NewIntervalIsInvalidError("blocked date range", fromDate, toDate)
	}

	b.fromDate = fromDate
	b.toDate = toDate
	return nil
}

func (b *BlockedTime) setTimeOfDayRange(startTime, endTime *kernel.ClockTime) error {
	// A one-sided range cannot bound a time of day; the block covers the
	// whole day.
	if startTime == nil || endTime == nil {
		return nil
	}
	if err := startTime.Validate(); err != nil {
		return err
	}
	if err := endTime.Validate(); err != nil {
		return err
	}

	b.startTime = startTime
	b.endTime = endTime
	return nil
}

func (b *BlockedTime) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}
	b.reason = reason
	return nil
}
