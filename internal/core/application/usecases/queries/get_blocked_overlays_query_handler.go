package queries

import (
	"context"

	"gorm.io/gorm"

	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"
)

// GetBlockedOverlaysQueryHandler reads blocked-time records from the database
// and projects them onto the queried date.
type GetBlockedOverlaysQueryHandler struct {
	db *gorm.DB
}

// NewGetBlockedOverlaysQueryHandler creates a handler backed by the given
// database connection.
func NewGetBlockedOverlaysQueryHandler(db *gorm.DB) (GetBlockedOverlaysQueryHandler, error) {
	if db == nil {
		return GetBlockedOverlaysQueryHandler{}, errs.NewValueIsRequiredError("db")
	}

	return GetBlockedOverlaysQueryHandler{db: db}, nil
}

// Handle returns the renderable overlays for the queried date. Blocks whose
// date range misses the date, or whose timed interval collapses outside the
// visible window, are filtered out by the projection. With a worker filter
// set, provider-wide blocks are still included since they apply to every
// worker.
func (h GetBlockedOverlaysQueryHandler) Handle(
	ctx context.Context, query GetBlockedOverlaysQuery,
) ([]BlockedOverlay, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	blocks, err := loadBlockedTimes(ctx, h.db, query.ProviderID(), query.Date())
	if err != nil {
		return nil, err
	}

	projector := services.NewBlockedIntervalProjector()
	overlays := make([]BlockedOverlay, 0, len(blocks))
	for _, block := range blocks {
		if query.WorkerID() != nil && !block.AppliesToWorker(query.WorkerID()) {
			continue
		}

		interval, ok := projector.Project(block, query.Date())
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

	return overlays, nil
}
