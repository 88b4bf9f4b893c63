package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for worker aggregates.
type WorkerRepository interface {
	// Add persists a new worker aggregate to storage.
	// The worker must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *worker.Worker) error

	// Update persists changes to an existing worker aggregate.
	Update(ctx context.Context, aggregate *worker.Worker) error

	// Get retrieves a worker aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// GetAllForProvider retrieves the provider's full team. The team list
	// drives capacity and underutilization numbers, so workers without any
	// jobs are included.
	GetAllForProvider(ctx context.Context, providerID kernel.UUID) ([]*worker.Worker, error)
}
