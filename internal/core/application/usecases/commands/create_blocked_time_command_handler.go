package commands

import (
	"context"
	"fmt"

	"fieldops/internal/core/domain/model/blockedtime"
	"fieldops/internal/core/domain/model/kernel"
)

// CreateBlockedTimeCommandHandler handles the business logic for marking
// time as unavailable.
type CreateBlockedTimeCommandHandler struct {
	uowFactory BlockedTimeUoWFactory
}

// NewCreateBlockedTimeCommandHandler creates a handler for blocked-time
// creation.
func NewCreateBlockedTimeCommandHandler(uowFactory BlockedTimeUoWFactory) CreateBlockedTimeCommandHandler {
	return CreateBlockedTimeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Parses the time-of-day labels, builds the
// validated record, and persists it.
func (h CreateBlockedTimeCommandHandler) Handle(ctx context.Context, cmd CreateBlockedTimeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var startTime, endTime *kernel.ClockTime
	if !cmd.IsAllDay() {
		start, err := kernel.ParseClockTime(cmd.StartTime())
		if err != nil {
			return err
		}
		end, err := kernel.ParseClockTime(cmd.EndTime())
		if err != nil {
			return err
		}
		startTime, endTime = &start, &end
	}

	record, err := blockedtime.NewBlockedTime(cmd.BlockID(), cmd.ProviderID(), cmd.WorkerID(),
		cmd.FromDate(), cmd.ToDate(), startTime, endTime, cmd.Reason())
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

	if err = uow.BlockedTimeRepository().Add(ctx, record); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	return nil
}
