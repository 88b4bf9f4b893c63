// Package ports defines repository interfaces for the scheduling domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
// Provides methods for storing, retrieving, and querying jobs along with
// their worker assignments.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate, including its
	// worker assignments. The job must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	// Returns the complete job with its status and assignments.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllOnDate retrieves every job of the provider whose window starts on
	// the given calendar date, cancelled jobs included. Callers filter by
	// status as needed.
	//
	// This is the snapshot the conflict detector and the reschedule planner
	// operate on, so it must return assignments fully loaded.
	GetAllOnDate(ctx context.Context, providerID kernel.UUID, date time.Time) ([]*job.Job, error)
}
