package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrRemoveBlockedTimeCommandIsNotConstructed = errors.New(
	"RemoveBlockedTimeCommand must be created via NewRemoveBlockedTimeCommand constructor",
)

// RemoveBlockedTimeCommand represents a request to lift a blocked-time
// record. Blocks are immutable, so editing one is remove plus create.
type RemoveBlockedTimeCommand struct { //nolint:recvcheck //using for validation
	blockID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveBlockedTimeCommand creates a command to remove a block.
func NewRemoveBlockedTimeCommand(blockID kernel.UUID) (RemoveBlockedTimeCommand, error) {
	removeCommand := RemoveBlockedTimeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setBlockID(blockID); err != nil {
		return RemoveBlockedTimeCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveBlockedTimeCommand) Validate() error {
	return c.guard.Validate(ErrRemoveBlockedTimeCommandIsNotConstructed)
}

// BlockID returns the record being removed.
func (c RemoveBlockedTimeCommand) BlockID() kernel.UUID {
	return c.blockID
}

func (c *RemoveBlockedTimeCommand) setBlockID(blockID kernel.UUID) error {
	if err := blockID.Validate(); err != nil {
		return err
	}

	c.blockID = blockID
	return nil
}
