// Package worker provides the Worker entity: a schedulable team member. The
// scheduling engine reads workers but never mutates them; lifecycle changes
// come from the team-management surface.
package worker

import (
	"errors"
	"fmt"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// Domain errors for worker operations.
var (
	// ErrWorkerIsNotConstructed is returned when using an improperly
	// initialized Worker.
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")
	// ErrFirstNameIsRequired is returned when creating a worker without a
	// first name.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("firstName")
	// ErrLastNameIsRequired is returned when creating a worker without a
	// last name.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("lastName")
	// ErrRoleIsRequired is returned when creating a worker without a role.
	ErrRoleIsRequired = errs.NewValueIsRequiredError("role")
)

// Worker represents a schedulable team member. Jobs reference workers through
// their assigned worker IDs; capacity is derived from the team's size and the
// standard working day.
type Worker struct {
	// id uniquely identifies the worker
	id kernel.UUID
	// providerID identifies the provider the worker belongs to
	providerID kernel.UUID
	// firstName and lastName identify the worker to dispatchers
	firstName string
	lastName  string
	// role labels the worker's trade (e.g. "technician", "lead")
	role string
	// guard ensures the worker was created via a constructor
	guard guard.ConstructorGuard
}

// NewWorker creates a validated Worker.
func NewWorker(id, providerID kernel.UUID, firstName, lastName, role string) (*Worker, error) {
	w := &Worker{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setProviderID(providerID),
		w.setFirstName(firstName),
		w.setLastName(lastName),
		w.setRole(role),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWorker reconstructs a Worker from persistent storage. It applies the
// same validation as NewWorker.
func RestoreWorker(id, providerID kernel.UUID, firstName, lastName, role string) (*Worker, error) {
	return NewWorker(id, providerID, firstName, lastName, role)
}

// Validate ensures the Worker was created through NewWorker.
func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

// IsEqual compares two workers by identifier.
func (w *Worker) IsEqual(other *Worker) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the worker's unique identifier.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

// ProviderID returns the identifier of the provider the worker belongs to.
func (w *Worker) ProviderID() kernel.UUID {
	return w.providerID
}

// FirstName returns the worker's first name.
func (w *Worker) FirstName() string {
	return w.firstName
}

// LastName returns the worker's last name.
func (w *Worker) LastName() string {
	return w.lastName
}

// Role returns the worker's trade label.
func (w *Worker) Role() string {
	return w.role
}

// FullName returns "First Last" for display and logs.
func (w *Worker) FullName() string {
	return fmt.Sprintf("%s %s", w.firstName, w.lastName)
}

func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setProviderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("providerId", err)
	}
	w.providerID = id
	return nil
}

func (w *Worker) setFirstName(name string) error {
	if name == "" {
		return ErrFirstNameIsRequired
	}
	w.firstName = name
	return nil
}

func (w *Worker) setLastName(name string) error {
	if name == "" {
		return ErrLastNameIsRequired
	}
	w.lastName = name
	return nil
}

func (w *Worker) setRole(role string) error {
	if role == "" {
		return ErrRoleIsRequired
	}
	w.role = role
	return nil
}
