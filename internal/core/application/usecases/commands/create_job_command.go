package commands

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrServiceTypeIsRequired  = errors.New("service type is required")
)

// CreateJobCommand represents a request to book a new job on the provider's
// calendar. Encapsulates the customer, the kind of work, the scheduled
// window, and the initial worker assignment.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	cmd, err := NewCreateJobCommand(jobID, providerID, "Dana Laine",
//	    "hvac-repair", start, start.Add(2*time.Hour), nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewCreateJobCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to book job: %w", err)
//	}
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID             kernel.UUID
	providerID        kernel.UUID
	customerName      string
	serviceType       string
	start             time.Time
	end               time.Time
	assignedWorkerIDs []kernel.UUID
	estimatedValue    *kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to book a new job. Validates the
// identifiers, the required labels, and that both schedule endpoints are
// present; the start-before-end rule is enforced by the domain when the
// handler builds the time window.
func NewCreateJobCommand(
	jobID kernel.UUID,
	providerID kernel.UUID,
	customerName string,
	serviceType string,
	start time.Time,
	end time.Time,
	assignedWorkerIDs []kernel.UUID,
	estimatedValue *kernel.Money,
) (CreateJobCommand, error) {
	jobCommand := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobCommand.setJobID(jobID),
		jobCommand.setProviderID(providerID),
		jobCommand.setCustomerName(customerName),
		jobCommand.setServiceType(serviceType),
		jobCommand.setSchedule(start, end),
		jobCommand.setAssignedWorkerIDs(assignedWorkerIDs),
		jobCommand.setEstimatedValue(estimatedValue),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return jobCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the unique identifier for the job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// ProviderID returns the provider whose calendar the job is booked on.
func (c CreateJobCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// CustomerName returns the customer the work is performed for.
func (c CreateJobCommand) CustomerName() string {
	return c.customerName
}

// ServiceType returns the kind of work being booked.
func (c CreateJobCommand) ServiceType() string {
	return c.serviceType
}

// Start returns the scheduled start instant.
func (c CreateJobCommand) Start() time.Time {
	return c.start
}

// End returns the scheduled end instant.
func (c CreateJobCommand) End() time.Time {
	return c.end
}

// AssignedWorkerIDs returns the initial worker assignment, possibly empty.
func (c CreateJobCommand) AssignedWorkerIDs() []kernel.UUID {
	return c.assignedWorkerIDs
}

// EstimatedValue returns the quoted value, or nil.
func (c CreateJobCommand) EstimatedValue() *kernel.Money {
	return c.estimatedValue
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("providerId", err)
	}

	c.providerID = providerID
	return nil
}

func (c *CreateJobCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateJobCommand) setServiceType(serviceType string) error {
	if serviceType == "" {
		return ErrServiceTypeIsRequired
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateJobCommand) setSchedule(start, end time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return errs.NewValueIsRequiredError("end")
	}

	c.start = start
	c.end = end
	return nil
}

func (c *CreateJobCommand) setAssignedWorkerIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("assignedWorkerIds", err)
		}
	}

	c.assignedWorkerIDs = ids
	return nil
}

func (c *CreateJobCommand) setEstimatedValue(value *kernel.Money) error {
	if value == nil {
		return nil
	}
	if err := value.Validate(); err != nil {
		return err
	}

	c.estimatedValue = value
	return nil
}
