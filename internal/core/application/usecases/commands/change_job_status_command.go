package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrChangeJobStatusCommandIsNotConstructed = errors.New(
	"ChangeJobStatusCommand must be created via NewChangeJobStatusCommand constructor",
)

// ChangeJobStatusCommand represents a request to advance a job's lifecycle
// state, or to cancel it from any non-terminal state.
type ChangeJobStatusCommand struct { //nolint:recvcheck //using for validation
	jobID  kernel.UUID
	status job.Status

	guard guard.ConstructorGuard
}

// NewChangeJobStatusCommand creates a command to change a job's status.
// Validates the identifier and that the target status is a known state; the
// transition rules themselves are enforced by the aggregate.
func NewChangeJobStatusCommand(jobID kernel.UUID, status job.Status) (ChangeJobStatusCommand, error) {
	statusCommand := ChangeJobStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setJobID(jobID),
		statusCommand.setStatus(status),
	); err != nil {
		return ChangeJobStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeJobStatusCommandIsNotConstructed)
}

// JobID returns the job whose status changes.
func (c ChangeJobStatusCommand) JobID() kernel.UUID {
	return c.jobID
}

// Status returns the requested target status.
func (c ChangeJobStatusCommand) Status() job.Status {
	return c.status
}

func (c *ChangeJobStatusCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *ChangeJobStatusCommand) setStatus(status job.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
