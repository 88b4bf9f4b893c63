package commands

import (
	"context"
	"fmt"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
)

// CreateJobCommandHandler handles the business logic for booking jobs.
// New jobs start in Scheduled status. Overlapping bookings are allowed here;
// the calendar surfaces them through the conflict detector rather than
// rejecting the booking.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job booking operations.
// Requires a JobUoWFactory for transactional persistence.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking command. Builds the validated time window,
// creates the aggregate in Scheduled status, and persists it inside a
// transaction.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	window, err := kernel.NewTimeWindow(cmd.Start(), cmd.End())
	if err != nil {
		return err
	}

	aggregate, err := job.NewJob(cmd.JobID(), cmd.ProviderID(), cmd.CustomerName(),
		cmd.ServiceType(), window, cmd.AssignedWorkerIDs(), cmd.EstimatedValue())
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

	if err = uow.JobRepository().Add(ctx, aggregate); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	return nil
}
