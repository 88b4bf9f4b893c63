package commands

import (
	"context"
	"errors"
	"fmt"

	"fieldops/internal/pkg/errs"
)

// ErrBlockedTimeNotFound is returned when the block being lifted does not
// exist.
var ErrBlockedTimeNotFound = errors.New("blocked time not found")

// RemoveBlockedTimeCommandHandler lifts a blocked-time record.
type RemoveBlockedTimeCommandHandler struct {
	uowFactory BlockedTimeUoWFactory
}

// NewRemoveBlockedTimeCommandHandler creates a handler for block removal.
func NewRemoveBlockedTimeCommandHandler(uowFactory BlockedTimeUoWFactory) RemoveBlockedTimeCommandHandler {
	return RemoveBlockedTimeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command. Returns ErrBlockedTimeNotFound when
// the record does not exist.
func (h RemoveBlockedTimeCommandHandler) Handle(ctx context.Context, cmd RemoveBlockedTimeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err := uow.BlockedTimeRepository().Delete(ctx, cmd.BlockID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrBlockedTimeNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	return nil
}
