package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

var ErrGetBlockedOverlaysQueryIsNotConstructed = errors.New(
	"GetBlockedOverlaysQuery must be created via NewGetBlockedOverlaysQuery constructor",
)

// GetBlockedOverlaysQuery retrieves the blocked-time overlays for one date,
// optionally narrowed to the blocks applying to a single worker.
type GetBlockedOverlaysQuery struct {
	providerID kernel.UUID
	date       time.Time
	workerID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBlockedOverlaysQuery creates an overlay query. A nil workerID returns
// every overlay on the provider calendar; a non-nil workerID returns the
// overlays applying to that worker, which includes provider-wide blocks.
func NewGetBlockedOverlaysQuery(
	providerID kernel.UUID, date time.Time, workerID *kernel.UUID,
) (GetBlockedOverlaysQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetBlockedOverlaysQuery{}, errs.NewValueIsRequiredErrorWithCause("providerId", err)
	}
	if date.IsZero() {
		return GetBlockedOverlaysQuery{}, errs.NewValueIsRequiredError("date")
	}
	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return GetBlockedOverlaysQuery{}, errs.NewValueIsRequiredErrorWithCause("workerId", err)
		}
	}

	return GetBlockedOverlaysQuery{
		providerID: providerID,
		date:       date,
		workerID:   workerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBlockedOverlaysQuery) Validate() error {
	return q.guard.Validate(ErrGetBlockedOverlaysQueryIsNotConstructed)
}

// ProviderID returns the provider whose blocks are read.
func (q GetBlockedOverlaysQuery) ProviderID() kernel.UUID {
	return q.providerID
}

// Date returns the date the blocks are projected onto.
func (q GetBlockedOverlaysQuery) Date() time.Time {
	return q.date
}

// WorkerID returns the optional worker filter.
func (q GetBlockedOverlaysQuery) WorkerID() *kernel.UUID {
	return q.workerID
}
