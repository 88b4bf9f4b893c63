package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
)

// ConflictAuditJob periodically recomputes today's double-bookings for one
// provider and logs each conflicting pair. It is a safety net for conflicts
// created outside the drag-drop path, where overlapping bookings are allowed
// on purpose.
type ConflictAuditJob struct {
	handler    queries.GetDailyScheduleQueryHandler
	providerID kernel.UUID
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewConflictAuditJob creates a job auditing the given provider's calendar.
func NewConflictAuditJob(
	handler queries.GetDailyScheduleQueryHandler,
	providerID kernel.UUID,
	logger *slog.Logger,
) *ConflictAuditJob {
	return &ConflictAuditJob{
		handler:    handler,
		providerID: providerID,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "conflict_audit_job"),
	}
}

// Start begins the conflict audit job, running every five minutes.
func (j *ConflictAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetDailyScheduleQuery(j.providerID, time.Now().UTC())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Conflict audit job failed to build query", "error", queryErr)
			return
		}

		schedule, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Conflict audit job failed", "error", handleErr)
			return
		}

		for _, conflict := range schedule.Conflicts {
			j.logger.WarnContext(ctx, "Double-booked worker detected",
				"worker_id", conflict.WorkerID.String(),
				"first_job_id", conflict.FirstJobID.String(),
				"second_job_id", conflict.SecondJobID.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Conflict audit job started (running every five minutes)")
	return nil
}

// Stop stops the conflict audit job.
func (j *ConflictAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Conflict audit job stopped")
}
