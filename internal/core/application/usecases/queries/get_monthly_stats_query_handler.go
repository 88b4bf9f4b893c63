package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"
)

// GetMonthlyStatsQueryHandler reads a provider month from the database and
// aggregates it with the capacity calculator.
type GetMonthlyStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetMonthlyStatsQueryHandler creates a handler backed by the given
// database connection.
func NewGetMonthlyStatsQueryHandler(db *gorm.DB) (GetMonthlyStatsQueryHandler, error) {
	if db == nil {
		return GetMonthlyStatsQueryHandler{}, errs.NewValueIsRequiredError("db")
	}

	return GetMonthlyStatsQueryHandler{db: db}, nil
}

// Handle returns the month's revenue and utilization summary.
func (h GetMonthlyStatsQueryHandler) Handle(
	ctx context.Context, query GetMonthlyStatsQuery,
) (services.MonthlyStats, error) {
	if err := query.Validate(); err != nil {
		return services.MonthlyStats{}, err
	}

	month := query.Month()
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	jobs, err := loadJobs(ctx, h.db, query.ProviderID(), monthStart, monthEnd)
	if err != nil {
		return services.MonthlyStats{}, err
	}
	workers, err := loadWorkers(ctx, h.db, query.ProviderID())
	if err != nil {
		return services.MonthlyStats{}, err
	}

	return services.NewCapacityCalculator().MonthlyStats(jobs, workers, month), nil
}
