package commands

import (
	"errors"
	"fmt"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

var (
	ErrCreateBlockedTimeCommandIsNotConstructed = errors.New(
		"CreateBlockedTimeCommand must be created via NewCreateBlockedTimeCommand constructor",
	)
	ErrReasonIsRequired = errors.New("reason is required")
)

// CreateBlockedTimeCommand represents a request to mark a date range as
// unavailable, either for the whole provider or for one worker. Empty time
// labels mean an all-day block.
type CreateBlockedTimeCommand struct { //nolint:recvcheck //using for validation
	blockID    kernel.UUID
	providerID kernel.UUID
	workerID   *kernel.UUID
	fromDate   time.Time
	toDate     time.Time
	startTime  string
	endTime    string
	reason     string

	guard guard.ConstructorGuard
}

// NewCreateBlockedTimeCommand creates a command to add a blocked-time record.
// Time-of-day labels use "HH:MM" and are parsed in the handler; here they are
// only required to be both present or both absent.
func NewCreateBlockedTimeCommand(
	blockID, providerID kernel.UUID,
	workerID *kernel.UUID,
	fromDate, toDate time.Time,
	startTime, endTime string,
	reason string,
) (CreateBlockedTimeCommand, error) {
	blockCommand := CreateBlockedTimeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		blockCommand.setBlockID(blockID),
		blockCommand.setProviderID(providerID),
		blockCommand.setWorkerID(workerID),
		blockCommand.setDates(fromDate, toDate),
		blockCommand.setTimeOfDay(startTime, endTime),
		blockCommand.setReason(reason),
	); err != nil {
		return CreateBlockedTimeCommand{}, err
	}

	return blockCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBlockedTimeCommand) Validate() error {
	return c.guard.Validate(ErrCreateBlockedTimeCommandIsNotConstructed)
}

// BlockID returns the unique identifier for the record.
func (c CreateBlockedTimeCommand) BlockID() kernel.UUID {
	return c.blockID
}

// ProviderID returns the provider whose calendar the block covers.
func (c CreateBlockedTimeCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// WorkerID returns the worker the block is narrowed to, or nil for a
// provider-wide block.
func (c CreateBlockedTimeCommand) WorkerID() *kernel.UUID {
	return c.workerID
}

// FromDate returns the first blocked date.
func (c CreateBlockedTimeCommand) FromDate() time.Time {
	return c.fromDate
}

// ToDate returns the last blocked date, inclusive.
func (c CreateBlockedTimeCommand) ToDate() time.Time {
	return c.toDate
}

// StartTime returns the "HH:MM" start label, empty for all-day blocks.
func (c CreateBlockedTimeCommand) StartTime() string {
	return c.startTime
}

// EndTime returns the "HH:MM" end label, empty for all-day blocks.
func (c CreateBlockedTimeCommand) EndTime() string {
	return c.endTime
}

// Reason returns the display label.
func (c CreateBlockedTimeCommand) Reason() string {
	return c.reason
}

// IsAllDay reports whether the command describes an all-day block.
func (c CreateBlockedTimeCommand) IsAllDay() bool {
	return c.startTime == "" && c.endTime == ""
}

func (c *CreateBlockedTimeCommand) setBlockID(blockID kernel.UUID) error {
	if err := blockID.Validate(); err != nil {
		return err
	}

	c.blockID = blockID
	return nil
}

func (c *CreateBlockedTimeCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("providerId", err)
	}

	c.providerID = providerID
	return nil
}

func (c *CreateBlockedTimeCommand) setWorkerID(workerID *kernel.UUID) error {
	if workerID == nil {
		return nil
	}
	if err := workerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("workerId", err)
	}

	c.workerID = workerID
	return nil
}

func (c *CreateBlockedTimeCommand) setDates(fromDate, toDate time.Time) error {
	if fromDate.IsZero() {
		return errs.NewValueIsRequiredError("fromDate")
	}
	if toDate.IsZero() {
		return errs.NewValueIsRequiredError("toDate")
	}

	c.fromDate = fromDate
	c.toDate = toDate
	return nil
}

func (c *CreateBlockedTimeCommand) setTimeOfDay(startTime, endTime string) error {
	if (startTime == "") != (endTime == "") {
		return errs.NewValueIsInvalidErrorWithCause("blocked time of day",
			fmt.Errorf("startTime and endTime must both be set or both be absent"))
	}

	c.startTime = startTime
	c.endTime = endTime
	return nil
}

func (c *CreateBlockedTimeCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
