package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

var (
	ErrCreateWorkerCommandIsNotConstructed = errors.New(
		"CreateWorkerCommand must be created via NewCreateWorkerCommand constructor",
	)
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
	ErrRoleIsRequired      = errors.New("role is required")
)

// CreateWorkerCommand represents a request to add a worker to the provider's
// team.
type CreateWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID   kernel.UUID
	providerID kernel.UUID
	firstName  string
	lastName   string
	role       string

	guard guard.ConstructorGuard
}

// NewCreateWorkerCommand creates a command to register a new worker.
// Validates that both identifiers are valid and the name and role labels are
// present.
func NewCreateWorkerCommand(
	workerID, providerID kernel.UUID, firstName, lastName, role string,
) (CreateWorkerCommand, error) {
	workerCommand := CreateWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		workerCommand.setWorkerID(workerID),
		workerCommand.setProviderID(providerID),
		workerCommand.setFirstName(firstName),
		workerCommand.setLastName(lastName),
		workerCommand.setRole(role),
	); err != nil {
		return CreateWorkerCommand{}, err
	}

	return workerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkerCommandIsNotConstructed)
}

// WorkerID returns the unique identifier for the worker.
func (c CreateWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// ProviderID returns the provider whose team the worker joins.
func (c CreateWorkerCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// FirstName returns the worker's first name.
func (c CreateWorkerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the worker's last name.
func (c CreateWorkerCommand) LastName() string {
	return c.lastName
}

// Role returns the worker's role label.
func (c CreateWorkerCommand) Role() string {
	return c.role
}

func (c *CreateWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *CreateWorkerCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("providerId", err)
	}

	c.providerID = providerID
	return nil
}

func (c *CreateWorkerCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *CreateWorkerCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

func (c *CreateWorkerCommand) setRole(role string) error {
	if role == "" {
		return ErrRoleIsRequired
	}

	c.role = role
	return nil
}
