// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"fieldops/internal/core/ports"
)

// ErrPersistenceFailed wraps storage errors raised while writing an already
// validated change. Callers that see it can tell a rejected command from a
// command that was accepted but could not be saved.
var ErrPersistenceFailed = errors.New("persistence failed")

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// WorkerRepoFactory provides access to the worker repository within a transaction.
	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	// BlockedTimeRepoFactory provides access to the blocked-time repository
	// within a transaction.
	BlockedTimeRepoFactory interface {
		BlockedTimeRepository() ports.BlockedTimeRepository
	}

	// JobUoW manages transactions for job-only operations.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// WorkerUoW manages transactions for worker-only operations.
	WorkerUoW interface {
		TxManager
		WorkerRepoFactory
	}

	// WorkerUoWFactory creates new worker unit of work instances.
	WorkerUoWFactory interface {
		Create() WorkerUoW
	}

	// BlockedTimeUoW manages transactions for blocked-time operations.
	BlockedTimeUoW interface {
		TxManager
		BlockedTimeRepoFactory
	}

	// BlockedTimeUoWFactory creates new blocked-time unit of work instances.
	BlockedTimeUoWFactory interface {
		Create() BlockedTimeUoW
	}

	// UoW manages transactions across the whole schedule. Used by commands
	// that read the occupancy snapshot and blocked times while mutating a
	// job, so every check and the write see one consistent state.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   jobRepo := uow.JobRepository()
	//   blockedRepo := uow.BlockedTimeRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		JobRepoFactory
		WorkerRepoFactory
		BlockedTimeRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
