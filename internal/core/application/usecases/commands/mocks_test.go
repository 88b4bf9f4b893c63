package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/blockedtime"
	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
	"fieldops/internal/core/ports"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllOnDate(
	ctx context.Context, providerID kernel.UUID, date time.Time,
) ([]*job.Job, error) {
	args := m.Called(ctx, providerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Add(ctx context.Context, aggregate *worker.Worker) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWorkerRepository) Update(ctx context.Context, aggregate *worker.Worker) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetAllForProvider(
	ctx context.Context, providerID kernel.UUID,
) ([]*worker.Worker, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worker.Worker), args.Error(1)
}

type MockBlockedTimeRepository struct{ mock.Mock }

func (m *MockBlockedTimeRepository) Add(ctx context.Context, record *blockedtime.BlockedTime) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockBlockedTimeRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*blockedtime.BlockedTime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blockedtime.BlockedTime), args.Error(1)
}

func (m *MockBlockedTimeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlockedTimeRepository) GetAllCoveringDate(
	ctx context.Context, providerID kernel.UUID, date time.Time,
) ([]*blockedtime.BlockedTime, error) {
	args := m.Called(ctx, providerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blockedtime.BlockedTime), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

func (m *MockUoW) BlockedTimeRepository() ports.BlockedTimeRepository {
	args := m.Called()
	return args.Get(0).(ports.BlockedTimeRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockWorkerUoWFactory struct{ mock.Mock }

func (m *MockWorkerUoWFactory) Create() commands.WorkerUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkerUoW)
}

type MockBlockedTimeUoWFactory struct{ mock.Mock }

func (m *MockBlockedTimeUoWFactory) Create() commands.BlockedTimeUoW {
	args := m.Called()
	return args.Get(0).(commands.BlockedTimeUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
