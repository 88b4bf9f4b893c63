package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrRecordJobValueCommandIsNotConstructed = errors.New(
	"RecordJobValueCommand must be created via NewRecordJobValueCommand constructor",
)

// RecordJobValueCommand represents a request to record the invoiced value of
// a job after the work is done. The actual value replaces the estimate in
// revenue reports.
type RecordJobValueCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	value kernel.Money

	guard guard.ConstructorGuard
}

// NewRecordJobValueCommand creates a command to record an invoiced value.
func NewRecordJobValueCommand(jobID kernel.UUID, value kernel.Money) (RecordJobValueCommand, error) {
	valueCommand := RecordJobValueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		valueCommand.setJobID(jobID),
		valueCommand.setValue(value),
	); err != nil {
		return RecordJobValueCommand{}, err
	}

	return valueCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordJobValueCommand) Validate() error {
	return c.guard.Validate(ErrRecordJobValueCommandIsNotConstructed)
}

// JobID returns the job being invoiced.
func (c RecordJobValueCommand) JobID() kernel.UUID {
	return c.jobID
}

// Value returns the invoiced value.
func (c RecordJobValueCommand) Value() kernel.Money {
	return c.value
}

func (c *RecordJobValueCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *RecordJobValueCommand) setValue(value kernel.Money) error {
	if err := value.Validate(); err != nil {
		return err
	}

	c.value = value
	return nil
}
