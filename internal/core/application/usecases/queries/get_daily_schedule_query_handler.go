package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"
)

// GetDailyScheduleQueryHandler reads one provider calendar day straight from
// the database and runs the calendar calculators over the reconstructed
// aggregates.
type GetDailyScheduleQueryHandler struct {
	db *gorm.DB
}

// NewGetDailyScheduleQueryHandler creates a handler backed by the given
// database connection.
func NewGetDailyScheduleQueryHandler(db *gorm.DB) (GetDailyScheduleQueryHandler, error) {
	if db == nil {
		return GetDailyScheduleQueryHandler{}, errs.NewValueIsRequiredError("db")
	}

	return GetDailyScheduleQueryHandler{db: db}, nil
}

// Handle returns the provider's jobs starting on the queried date, the
// blocked-time overlays projected onto it, the detected conflicts, and the
// day's capacity numbers. Jobs are ordered by start time, overlays by the
// start of the underlying record.
func (h GetDailyScheduleQueryHandler) Handle(
	ctx context.Context, query GetDailyScheduleQuery,
) (GetDailyScheduleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailyScheduleQueryResponse{}, err
	}

	date := query.Date()
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	jobs, err := loadJobs(ctx, h.db, query.ProviderID(), dayStart, dayEnd)
	if err != nil {
		return GetDailyScheduleQueryResponse{}, err
	}
	workers, err := loadWorkers(ctx, h.db, query.ProviderID())
	if err != nil {
		return GetDailyScheduleQueryResponse{}, err
	}
	blocks, err := loadBlockedTimes(ctx, h.db, query.ProviderID(), date)
	if err != nil {
		return GetDailyScheduleQueryResponse{}, err
	}

	summaries := make([]JobSummary, 0, len(jobs))
	for _, j := range jobs {
		summaries = append(summaries, JobSummary{
			ID:                j.ID(),
			CustomerName:      j.CustomerName(),
			ServiceType:       j.ServiceType(),
			Start:             j.Window().Start(),
			End:               j.Window().End(),
			Status:            j.Status().String(),
			AssignedWorkerIDs: j.AssignedWorkerIDs(),
		})
	}

	projector := services.NewBlockedIntervalProjector()
	overlays := make([]BlockedOverlay, 0, len(blocks))
	for _, block := range blocks {
		interval, ok := projector.Project(block, date)
		if !ok {
			continue
		}
		overlays = append(overlays, BlockedOverlay{
			BlockID:   block.ID(),
			WorkerID:  block.WorkerID(),
			StartHour: interval.StartHour,
			EndHour:   interval.EndHour,
			IsAllDay:  interval.IsAllDay,
			Reason:    block.Reason(),
		})
	}

	ix := services.BuildOccupancyIndex(jobs)
	conflicts := services.NewConflictDetector().Detect(ix)
	stats := services.NewCapacityCalculator().DailyStats(jobs, workers, date)

	return GetDailyScheduleQueryResponse{
		Jobs:      summaries,
		Overlays:  overlays,
		Conflicts: conflicts,
		Stats:     stats,
	}, nil
}
