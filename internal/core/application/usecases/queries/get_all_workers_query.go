package queries

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

var ErrGetAllWorkersQueryIsNotConstructed = errors.New(
	"GetAllWorkersQuery must be created via NewGetAllWorkersQuery constructor",
)

// GetAllWorkersQuery retrieves the provider's full team roster.
type GetAllWorkersQuery struct {
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAllWorkersQuery creates a roster query for one provider.
func NewGetAllWorkersQuery(providerID kernel.UUID) (GetAllWorkersQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetAllWorkersQuery{}, errs.NewValueIsRequiredErrorWithCause("providerId", err)
	}

	return GetAllWorkersQuery{
		providerID: providerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllWorkersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWorkersQueryIsNotConstructed)
}

// ProviderID returns the provider whose roster is read.
func (q GetAllWorkersQuery) ProviderID() kernel.UUID {
	return q.providerID
}

// WorkerSummary is one roster entry.
type WorkerSummary struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Role      string
}

// GetAllWorkersQueryResponse is the provider roster, ordered by last name
// then first name.
type GetAllWorkersQueryResponse struct {
	Workers []WorkerSummary
}
