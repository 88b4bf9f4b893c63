package commands

import (
	"context"
	"fmt"

	"fieldops/internal/core/domain/model/worker"
)

// CreateWorkerCommandHandler handles the business logic for adding workers to
// the team.
type CreateWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewCreateWorkerCommandHandler creates a handler for worker registration.
func NewCreateWorkerCommandHandler(uowFactory WorkerUoWFactory) CreateWorkerCommandHandler {
	return CreateWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the worker registration command.
func (h CreateWorkerCommandHandler) Handle(ctx context.Context, cmd CreateWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := worker.NewWorker(cmd.WorkerID(), cmd.ProviderID(),
		cmd.FirstName(), cmd.LastName(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkerRepository().Add(ctx, aggregate); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	return nil
}
