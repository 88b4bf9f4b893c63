// Package jobrepo provides data transfer objects and mapping functions for job
// persistence. This package implements the repository pattern for the job
// domain aggregate, handling the conversion between domain entities and
// database representations.
package jobrepo

import (
	"time"

	"github.com/google/uuid"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
)

// JobDTO represents the database structure for persisting job aggregates.
// Worker assignments live in a child table so a job can be assigned to any
// number of workers.
type JobDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID   uuid.UUID `gorm:"type:uuid;index"`
	CustomerName string
	ServiceType  string
	StartTime    time.Time `gorm:"index"`
	EndTime      time.Time
	Status       int

	EstimatedValueCents *int64
	ActualValueCents    *int64

	Assignments []JobAssignmentDTO `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// JobAssignmentDTO represents one worker assigned to one job.
type JobAssignmentDTO struct {
	JobID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for job assignments.
func (JobAssignmentDTO) TableName() string {
	return "job_assignments"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	assignments := make([]JobAssignmentDTO, 0, len(aggregate.AssignedWorkerIDs()))
	for _, workerID := range aggregate.AssignedWorkerIDs() {
		assignments = append(assignments, JobAssignmentDTO{
			JobID:    aggregate.ID().Bytes(),
			WorkerID: workerID.Bytes(),
		})
	}

	return JobDTO{
		ID:                  aggregate.ID().Bytes(),
		ProviderID:          aggregate.ProviderID().Bytes(),
		CustomerName:        aggregate.CustomerName(),
		ServiceType:         aggregate.ServiceType(),
		StartTime:           aggregate.Window().Start(),
		EndTime:             aggregate.Window().End(),
		Status:              int(aggregate.Status()),
		EstimatedValueCents: moneyToCents(aggregate.EstimatedValue()),
		ActualValueCents:    moneyToCents(aggregate.ActualValue()),
		Assignments:         assignments,
	}
}

// toDomain converts a database DTO to a job domain aggregate using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewTimeWindow(dto.StartTime, dto.EndTime)
	if err != nil {
		return nil, err
	}

	workerIDs := make([]kernel.UUID, 0, len(dto.Assignments))
	for _, assignment := range dto.Assignments {
		workerID, workerErr := kernel.UUIDFromBytes(assignment.WorkerID[:])
		if workerErr != nil {
			return nil, workerErr
		}
		workerIDs = append(workerIDs, workerID)
	}

	estimatedValue, err := centsToMoney(dto.EstimatedValueCents)
	if err != nil {
		return nil, err
	}

	actualValue, err := centsToMoney(dto.ActualValueCents)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(id, providerID, dto.CustomerName, dto.ServiceType,
		window, job.Status(dto.Status), workerIDs, estimatedValue, actualValue)
}

func moneyToCents(value *kernel.Money) *int64 {
	if value == nil {
		return nil
	}
	cents := value.Cents()
	return &cents
}

func centsToMoney(cents *int64) (*kernel.Money, error) {
	if cents == nil {
		return nil, nil
	}
	value, err := kernel.NewMoney(*cents)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
