package jobs

import (
	"fmt"
	"log/slog"

	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	conflictAuditJob  *ConflictAuditJob
	capacityReportJob *CapacityReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Both jobs read through the daily schedule query handler for the configured
// provider.
func NewJobManager(
	dailyScheduleHandler queries.GetDailyScheduleQueryHandler,
	providerID kernel.UUID,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		conflictAuditJob:  NewConflictAuditJob(dailyScheduleHandler, providerID, logger),
		capacityReportJob: NewCapacityReportJob(dailyScheduleHandler, providerID, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.conflictAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start conflict audit job: %w", err)
	}

	if err := jm.capacityReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.conflictAuditJob.Stop()
		return fmt.Errorf("failed to start capacity report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.capacityReportJob.Stop()
	jm.conflictAuditJob.Stop()
}
