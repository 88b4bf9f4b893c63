package commands

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

var ErrRescheduleJobCommandIsNotConstructed = errors.New(
	"RescheduleJobCommand must be created via NewRescheduleJobCommand constructor",
)

// RescheduleJobCommand represents a drag-and-drop move of a job to a new
// calendar slot. The target is a date plus an hour in the visible window,
// and optionally a new worker; the job's duration never changes.
type RescheduleJobCommand struct { //nolint:recvcheck //using for validation
	jobID          kernel.UUID
	providerID     kernel.UUID
	targetDate     time.Time
	targetHour     int
	targetWorkerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRescheduleJobCommand creates a command to move a job. The target hour
// must lie in the visible calendar window; the deeper slot checks happen in
// the handler against a consistent schedule snapshot.
func NewRescheduleJobCommand(
	jobID, providerID kernel.UUID,
	targetDate time.Time,
	targetHour int,
	targetWorkerID *kernel.UUID,
) (RescheduleJobCommand, error) {
	rescheduleCommand := RescheduleJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rescheduleCommand.setJobID(jobID),
		rescheduleCommand.setProviderID(providerID),
		rescheduleCommand.setTarget(targetDate, targetHour),
		rescheduleCommand.setTargetWorkerID(targetWorkerID),
	); err != nil {
		return RescheduleJobCommand{}, err
	}

	return rescheduleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleJobCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleJobCommandIsNotConstructed)
}

// JobID returns the job being moved.
func (c RescheduleJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// ProviderID returns the provider whose calendar is being edited.
func (c RescheduleJobCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// TargetDate returns the calendar date the job is dropped on.
func (c RescheduleJobCommand) TargetDate() time.Time {
	return c.targetDate
}

// TargetHour returns the hour slot the job is dropped on.
func (c RescheduleJobCommand) TargetHour() int {
	return c.targetHour
}

// TargetWorkerID returns the worker row the job is dropped on, or nil when
// the move keeps the current assignment.
func (c RescheduleJobCommand) TargetWorkerID() *kernel.UUID {
	return c.targetWorkerID
}

func (c *RescheduleJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *RescheduleJobCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("providerId", err)
	}

	c.providerID = providerID
	return nil
}

func (c *RescheduleJobCommand) setTarget(targetDate time.Time, targetHour int) error {
	if targetDate.IsZero() {
		return errs.NewValueIsRequiredError("targetDate")
	}
	if !kernel.InVisibleWindow(targetHour) {
		return errs.NewValueIsOutOfRangeError("targetHour", targetHour,
			kernel.VisibleStartHour, kernel.VisibleEndHour)
	}

	c.targetDate = targetDate
	c.targetHour = targetHour
	return nil
}

func (c *RescheduleJobCommand) setTargetWorkerID(targetWorkerID *kernel.UUID) error {
	if targetWorkerID == nil {
		return nil
	}
	if err := targetWorkerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("targetWorkerId", err)
	}

	c.targetWorkerID = targetWorkerID
	return nil
}
