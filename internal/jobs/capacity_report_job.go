package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
)

// CapacityReportJob hourly logs the provider's utilization numbers for the
// current day, giving operators a trail of how booked the team was without
// anyone opening the dashboard.
type CapacityReportJob struct {
	handler    queries.GetDailyScheduleQueryHandler
	providerID kernel.UUID
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewCapacityReportJob creates a job reporting on the given provider's
// calendar.
func NewCapacityReportJob(
	handler queries.GetDailyScheduleQueryHandler,
	providerID kernel.UUID,
	logger *slog.Logger,
) *CapacityReportJob {
	return &CapacityReportJob{
		handler:    handler,
		providerID: providerID,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "capacity_report_job"),
	}
}

// Start begins the capacity report job, running at the top of every hour.
func (j *CapacityReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetDailyScheduleQuery(j.providerID, time.Now().UTC())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Capacity report job failed to build query", "error", queryErr)
			return
		}

		schedule, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Capacity report job failed", "error", handleErr)
			return
		}

		stats := schedule.Stats
		j.logger.InfoContext(ctx, "Daily capacity report",
			"total_jobs", stats.TotalJobs,
			"total_hours", stats.TotalHours,
			"total_capacity", stats.TotalCapacity,
			"avg_capacity_percent", stats.AvgCapacityPercent,
			"active_workers", stats.ActiveWorkers,
			"unassigned_jobs", stats.UnassignedJobs,
			"conflicts", stats.Conflicts,
			"overbooked_workers", stats.OverbookedWorkers,
			"underutilized_workers", stats.UnderutilizedWorkers,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity report job started (running hourly)")
	return nil
}

// Stop stops the capacity report job.
func (j *CapacityReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Capacity report job stopped")
}
