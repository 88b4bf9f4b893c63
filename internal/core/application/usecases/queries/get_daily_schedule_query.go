// Package queries contains read operations over the schedule. Query handlers
// bypass the repositories and read the database directly, reconstructing just
// enough domain state to run the calendar calculators.
package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

var ErrGetDailyScheduleQueryIsNotConstructed = errors.New(
	"GetDailyScheduleQuery must be created via NewGetDailyScheduleQuery constructor",
)

// GetDailyScheduleQuery retrieves one day of the provider's calendar: jobs,
// blocked overlays, conflicts, and capacity numbers in a single response.
//
// Example:
//
//	query, err := NewGetDailyScheduleQuery(providerID, date)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetDailyScheduleQueryHandler(db)
//	schedule, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load schedule: %w", err)
//	}
//	fmt.Printf("%d jobs, %d conflicts\n", len(schedule.Jobs), len(schedule.Conflicts))
type GetDailyScheduleQuery struct {
	providerID kernel.UUID
	date       time.Time

	guard guard.ConstructorGuard
}

// NewGetDailyScheduleQuery creates a query for one provider calendar day.
func NewGetDailyScheduleQuery(providerID kernel.UUID, date time.Time) (GetDailyScheduleQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetDailyScheduleQuery{}, errs.NewValueIsRequiredErrorWithCause("providerId", err)
	}
	if date.IsZero() {
		return GetDailyScheduleQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetDailyScheduleQuery{
		providerID: providerID,
		date:       date,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailyScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyScheduleQueryIsNotConstructed)
}

// ProviderID returns the provider whose calendar is read.
func (q GetDailyScheduleQuery) ProviderID() kernel.UUID {
	return q.providerID
}

// Date returns the calendar date being read.
func (q GetDailyScheduleQuery) Date() time.Time {
	return q.date
}

// JobSummary is one job as rendered on the calendar.
type JobSummary struct {
	ID                kernel.UUID
	CustomerName      string
	ServiceType       string
	Start             time.Time
	End               time.Time
	Status            string
	AssignedWorkerIDs []kernel.UUID
}

// BlockedOverlay is one blocked-time record projected onto the queried date.
type BlockedOverlay struct {
	BlockID   kernel.UUID
	WorkerID  *kernel.UUID
	StartHour int
	EndHour   int
	IsAllDay  bool
	Reason    string
}

// GetDailyScheduleQueryResponse is the full day view the calendar renders
// from.
type GetDailyScheduleQueryResponse struct {
	Jobs      []JobSummary
	Overlays  []BlockedOverlay
	Conflicts []services.Conflict
	Stats     services.DailyStats
}
