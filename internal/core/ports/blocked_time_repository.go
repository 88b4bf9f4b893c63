package ports

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/blockedtime"
	"fieldops/internal/core/domain/model/kernel"
)

// BlockedTimeRepository defines the persistence contract for blocked-time
// records.
type BlockedTimeRepository interface {
	// Add persists a new blocked-time record.
	Add(ctx context.Context, record *blockedtime.BlockedTime) error

	// Get retrieves a blocked-time record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*blockedtime.BlockedTime, error)

	// Delete removes a blocked-time record. Blocks are immutable; lifting a
	// block means deleting it.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllCoveringDate retrieves the provider's blocks whose date range
	// contains the given calendar date, both provider-wide and worker-level.
	GetAllCoveringDate(ctx context.Context, providerID kernel.UUID, date time.Time) ([]*blockedtime.BlockedTime, error)
}
