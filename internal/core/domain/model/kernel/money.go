package kernel

import (
	"fmt"

	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money is a non-negative monetary amount stored in cents. Job estimates and
// actuals use it; the monthly revenue aggregation sums it.
type Money struct {
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates a validated amount. Negative amounts are rejected; jobs
// never carry negative value.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%d cents is negative", cents))
	}

	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the amount was created through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.cents + other.cents)
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount as decimal units for logs and responses.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
