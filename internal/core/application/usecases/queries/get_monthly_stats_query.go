package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

var ErrGetMonthlyStatsQueryIsNotConstructed = errors.New(
	"GetMonthlyStatsQuery must be created via NewGetMonthlyStatsQuery constructor",
)

// GetMonthlyStatsQuery retrieves revenue and utilization numbers for one
// provider month.
type GetMonthlyStatsQuery struct {
	providerID kernel.UUID
	month      time.Time

	guard guard.ConstructorGuard
}

// NewGetMonthlyStatsQuery creates a query for the calendar month containing
// the given time.
func NewGetMonthlyStatsQuery(providerID kernel.UUID, month time.Time) (GetMonthlyStatsQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetMonthlyStatsQuery{}, errs.NewValueIsRequiredErrorWithCause("providerId", err)
	}
	if month.IsZero() {
		return GetMonthlyStatsQuery{}, errs.NewValueIsRequiredError("month")
	}

	return GetMonthlyStatsQuery{
		providerID: providerID,
		month:      month,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMonthlyStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetMonthlyStatsQueryIsNotConstructed)
}

// ProviderID returns the provider whose month is summarized.
func (q GetMonthlyStatsQuery) ProviderID() kernel.UUID {
	return q.providerID
}

// Month returns a time within the month being summarized.
func (q GetMonthlyStatsQuery) Month() time.Time {
	return q.month
}
