package commands

import (
	"context"
	"errors"
	"fmt"

	"fieldops/internal/pkg/errs"
)

// RecordJobValueCommandHandler records the invoiced value of a job.
type RecordJobValueCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewRecordJobValueCommandHandler creates a handler for invoiced values.
func NewRecordJobValueCommandHandler(uowFactory JobUoWFactory) RecordJobValueCommandHandler {
	return RecordJobValueCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Returns ErrJobNotFound when the job does not
// exist.
func (h RecordJobValueCommandHandler) Handle(ctx context.Context, cmd RecordJobValueCommand) error {
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

	if err = aggregate.RecordActualValue(cmd.Value()); err != nil {
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
