package job

import (
	"errors"
	"fmt"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// Domain errors for job operations.
var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created
	// through NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")
	// ErrCustomerNameIsRequired is returned when creating a job without a
	// customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrServiceTypeIsRequired is returned when creating a job without a
	// service type.
	ErrServiceTypeIsRequired = errs.NewValueIsRequiredError("serviceType")
	// ErrJobIsTerminal is returned when rescheduling or reassigning a
	// completed or cancelled job.
	ErrJobIsTerminal = errors.New("job is in a terminal status")
)

// Job represents a unit of scheduled field work. It is the aggregate root
// that manages the job lifecycle from booking through dispatch to completion.
//
// Job maintains these invariants:
//   - Valid unique identifier and owning provider
//   - Time window with start strictly before end
//   - Status transitions follow the state machine in Status
//   - Worker assignments contain no duplicates
//   - Rescheduling preserves duration and is rejected for terminal jobs
//
// The struct uses private fields so every mutation goes through a validated
// method.
type Job struct {
	// id uniquely identifies the job
	id kernel.UUID
	// providerID identifies the provider whose calendar owns the job
	providerID kernel.UUID
	// customerName is the customer the work is performed for
	customerName string
	// serviceType labels the kind of work (e.g. "hvac-repair")
	serviceType string
	// window is the scheduled time window, start < end always
	window kernel.TimeWindow
	// status is the current lifecycle state
	status Status
	// assignedWorkerIDs is the set of workers assigned to the job; empty
	// means unassigned
	assignedWorkerIDs []kernel.UUID
	// estimatedValue is the quoted value of the job, if any
	estimatedValue *kernel.Money
	// actualValue is the invoiced value after completion, if any
	actualValue *kernel.Money
	// guard ensures the job was created via a constructor
	guard guard.ConstructorGuard
}

// NewJob creates a new Job in Scheduled status. This is the only way to
// create a fresh job; all invariants are validated before the aggregate is
// returned.
//
// Example:
//
//	window, _ := kernel.NewTimeWindow(start, start.Add(2*time.Hour))
//	j, err := job.NewJob(kernel.NewUUID(), providerID, "Dana Laine",
//	    "hvac-repair", window, nil, &estimate)
//	if err != nil {
//	    // a parameter violated an invariant
//	}
func NewJob(
	id kernel.UUID,
	providerID kernel.UUID,
	customerName string,
	serviceType string,
	window kernel.TimeWindow,
	assignedWorkerIDs []kernel.UUID,
	estimatedValue *kernel.Money,
) (*Job, error) {
	j := &Job{
		status: Scheduled,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setProviderID(providerID),
		j.setCustomerName(customerName),
		j.setServiceType(serviceType),
		j.setWindow(window),
		j.setAssignedWorkers(assignedWorkerIDs),
		j.setEstimatedValue(estimatedValue),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a Job aggregate from persistent storage, including
// its status and actual value. The restored job behaves identically to one
// built through normal domain operations.
func RestoreJob(
	id kernel.UUID,
	providerID kernel.UUID,
	customerName string,
	serviceType string,
	window kernel.TimeWindow,
	status Status,
	assignedWorkerIDs []kernel.UUID,
	estimatedValue *kernel.Money,
	actualValue *kernel.Money,
) (*Job, error) {
	j := &Job{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setProviderID(providerID),
		j.setCustomerName(customerName),
		j.setServiceType(serviceType),
		j.setWindow(window),
		j.setStatus(status),
		j.setAssignedWorkers(assignedWorkerIDs),
		j.setEstimatedValue(estimatedValue),
		j.setActualValue(actualValue),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the Job was created through a constructor. Call it when
// reconstructing jobs from external sources.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// IsEqual compares two jobs by identifier.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// ProviderID returns the identifier of the provider owning the job.
func (j *Job) ProviderID() kernel.UUID {
	return j.providerID
}

// CustomerName returns the customer the work is performed for.
func (j *Job) CustomerName() string {
	return j.customerName
}

// ServiceType returns the kind of work.
func (j *Job) ServiceType() string {
	return j.serviceType
}

// Window returns the scheduled time window.
func (j *Job) Window() kernel.TimeWindow {
	return j.window
}

// Status returns the current lifecycle state.
func (j *Job) Status() Status {
	return j.status
}

// AssignedWorkerIDs returns a copy of the assigned worker identifiers. An
// empty slice means the job is unassigned.
func (j *Job) AssignedWorkerIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(j.assignedWorkerIDs))
	copy(ids, j.assignedWorkerIDs)
	return ids
}

// IsAssignedTo reports whether the given worker is assigned to the job.
func (j *Job) IsAssignedTo(workerID kernel.UUID) bool {
	for _, id := range j.assignedWorkerIDs {
		if id.IsEqual(workerID) {
			return true
		}
	}
	return false
}

// IsUnassigned reports whether no worker is assigned.
func (j *Job) IsUnassigned() bool {
	return len(j.assignedWorkerIDs) == 0
}

// EstimatedValue returns the quoted value, or nil.
func (j *Job) EstimatedValue() *kernel.Money {
	return j.estimatedValue
}

// ActualValue returns the invoiced value, or nil.
func (j *Job) ActualValue() *kernel.Money {
	return j.actualValue
}

// Revenue returns the value the job contributes to revenue reports: the
// actual value when present, otherwise the estimate, otherwise nil.
func (j *Job) Revenue() *kernel.Money {
	if j.actualValue != nil {
		return j.actualValue
	}
	return j.estimatedValue
}

// Reschedule moves the job to a new time window and optionally replaces its
// worker assignment. The window must have been derived duration-preserving by
// the planner; the aggregate only enforces lifecycle rules here.
//
// Returns ErrJobIsTerminal for completed or cancelled jobs.
func (j *Job) Reschedule(window kernel.TimeWindow, assignedWorkerIDs []kernel.UUID) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if j.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrJobIsTerminal, j.status)
	}
	if err := window.Validate(); err != nil {
		return err
	}
	if err := j.setAssignedWorkers(assignedWorkerIDs); err != nil {
		return err
	}

	j.window = window
	return nil
}

// ChangeStatus advances the job's lifecycle state. The transition must be a
// single forward step or a jump to Cancelled; anything else fails with
// ErrInvalidTransition and leaves the job unchanged.
func (j *Job) ChangeStatus(next Status) error {
	if err := j.Validate(); err != nil {
		return err
	}

	newStatus, err := j.status.TransitionTo(next)
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// RecordActualValue sets the invoiced value after completion.
func (j *Job) RecordActualValue(value kernel.Money) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if err := value.Validate(); err != nil {
		return err
	}

	j.actualValue = &value
	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setProviderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("providerId", err)
	}
	j.providerID = id
	return nil
}

func (j *Job) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	j.customerName = name
	return nil
}

func (j *Job) setServiceType(serviceType string) error {
	if serviceType == "" {
		return ErrServiceTypeIsRequired
	}
	j.serviceType = serviceType
	return nil
}

func (j *Job) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	j.window = window
	return nil
}

func (j *Job) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	j.status = status
	return nil
}

func (j *Job) setAssignedWorkers(ids []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(ids))
	assigned := make([]kernel.UUID, 0, len(ids))

	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("assignedWorkerId", err)
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"assignedWorkerIds", fmt.Errorf("worker %s assigned twice", id))
		}
		seen[id] = struct{}{}
		assigned = append(assigned, id)
	}

	j.assignedWorkerIDs = assigned
	return nil
}

func (j *Job) setEstimatedValue(value *kernel.Money) error {
	if value == nil {
		return nil
	}
	if err := value.Validate(); err != nil {
		return err
	}
	j.estimatedValue = value
	return nil
}

func (j *Job) setActualValue(value *kernel.Money) error {
	if value == nil {
		return nil
	}
	if err := value.Validate(); err != nil {
		return err
	}
	j.actualValue = value
	return nil
}
