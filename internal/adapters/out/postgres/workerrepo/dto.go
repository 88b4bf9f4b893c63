// Package workerrepo provides data transfer objects and mapping functions for
// worker persistence.
package workerrepo

import (
	"github.com/google/uuid"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
)

// WorkerDTO represents the database structure for persisting worker
// aggregates.
type WorkerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID uuid.UUID `gorm:"type:uuid;index"`
	FirstName  string
	LastName   string
	Role       string
}

// TableName specifies the database table name for worker entities.
func (WorkerDTO) TableName() string {
	return "workers"
}

// fromDomain converts a worker domain aggregate to its database
// representation.
func fromDomain(aggregate *worker.Worker) WorkerDTO {
	return WorkerDTO{
		ID:         aggregate.ID().Bytes(),
		ProviderID: aggregate.ProviderID().Bytes(),
		FirstName:  aggregate.FirstName(),
		LastName:   aggregate.LastName(),
		Role:       aggregate.Role(),
	}
}

// toDomain converts a database DTO to a worker domain aggregate.
func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	return worker.RestoreWorker(id, providerID, dto.FirstName, dto.LastName, dto.Role)
}
