package commands

import (
	"context"
	"errors"
	"fmt"

	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"
)

// ErrJobNotFound is returned when the job being moved does not exist on the
// provider's calendar.
var ErrJobNotFound = errors.New("job not found")

// RescheduleJobCommandHandler orchestrates the drag-and-drop move. It loads
// the job, the day's schedule snapshot, and the active blocked times inside
// one transaction, asks the planner to validate the move, and persists the
// plan.
//
// Example:
//
//	handler := NewRescheduleJobCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrJobNotFound):
//	    log.Println("Job was removed meanwhile")
//	case errors.Is(err, services.ErrSlotUnavailable):
//	    log.Println("Target slot is blocked or occupied")
//	case err != nil:
//	    log.Printf("Move failed: %v", err)
//	}
type RescheduleJobCommandHandler struct {
	uowFactory UoWFactory
	planner    services.ReschedulePlanner
}

// NewRescheduleJobCommandHandler creates a handler for job moves.
// Requires a UoWFactory so the slot checks and the write share a transaction.
func NewRescheduleJobCommandHandler(uowFactory UoWFactory) RescheduleJobCommandHandler {
	return RescheduleJobCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewReschedulePlanner(),
	}
}

// Handle processes the move command. Dropping a job on its current slot is a
// no-op and succeeds without writing. Returns services.ErrSlotUnavailable
// when the target is blocked or occupied and ErrJobNotFound when the job does
// not belong to the provider's calendar.
func (h RescheduleJobCommandHandler) Handle(ctx context.Context, cmd RescheduleJobCommand) error {
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
	blockedRepo := uow.BlockedTimeRepository()

	aggregate, err := jobRepo.Get(ctx, cmd.JobID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrJobNotFound
	}
	if err != nil {
		return err
	}
	if !aggregate.ProviderID().IsEqual(cmd.ProviderID()) {
		return ErrJobNotFound
	}

	snapshot, err := jobRepo.GetAllOnDate(ctx, cmd.ProviderID(), cmd.TargetDate())
	if err != nil {
		return err
	}

	blocks, err := blockedRepo.GetAllCoveringDate(ctx, cmd.ProviderID(), cmd.TargetDate())
	if err != nil {
		return err
	}

	plan, err := h.planner.PlanMove(aggregate, services.DropTarget{
		Date:     cmd.TargetDate(),
		Hour:     cmd.TargetHour(),
		WorkerID: cmd.TargetWorkerID(),
	}, snapshot, blocks)
	if err != nil {
		return err
	}
	if plan.NoChange {
		return nil
	}

	if err = aggregate.Reschedule(plan.Window, plan.AssignedWorkerIDs); err != nil {
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
