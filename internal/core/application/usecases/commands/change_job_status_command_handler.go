package commands

import (
	"context"
	"errors"
	"fmt"

	"fieldops/internal/pkg/errs"
)

// ChangeJobStatusCommandHandler advances a job through its lifecycle. The
// aggregate enforces the single-step-forward rule and the cancel escape
// hatch; the handler only supplies the transaction.
type ChangeJobStatusCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewChangeJobStatusCommandHandler creates a handler for status changes.
func NewChangeJobStatusCommandHandler(uowFactory JobUoWFactory) ChangeJobStatusCommandHandler {
	return ChangeJobStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command. Returns ErrJobNotFound when the
// job does not exist and job.ErrInvalidTransition when the requested state is
// not reachable from the current one.
func (h ChangeJobStatusCommandHandler) Handle(ctx context.Context, cmd ChangeJobStatusCommand) error {
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

	jobRepo := uow.JobRepository()

	aggregate, err := jobRepo.Get(ctx, cmd.JobID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrJobNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	return nil
}
