package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
)

func TestNewCreateWorkerCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		workerID := kernel.NewUUID()
		providerID := kernel.NewUUID()

		cmd, err := commands.NewCreateWorkerCommand(workerID, providerID,
			"Sam", "Reyes", "technician")

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.WorkerID().IsEqual(workerID))
		assert.True(t, cmd.ProviderID().IsEqual(providerID))
		assert.Equal(t, "Sam", cmd.FirstName())
		assert.Equal(t, "Reyes", cmd.LastName())
		assert.Equal(t, "technician", cmd.Role())
	})

	t.Run("empty_first_name", func(t *testing.T) {
		_, err := commands.NewCreateWorkerCommand(kernel.NewUUID(), kernel.NewUUID(),
			"", "Reyes", "technician")

		assert.ErrorIs(t, err, commands.ErrFirstNameIsRequired)
	})

	t.Run("empty_last_name", func(t *testing.T) {
		_, err := commands.NewCreateWorkerCommand(kernel.NewUUID(), kernel.NewUUID(),
			"Sam", "", "technician")

		assert.ErrorIs(t, err, commands.ErrLastNameIsRequired)
	})

	t.Run("empty_role", func(t *testing.T) {
		_, err := commands.NewCreateWorkerCommand(kernel.NewUUID(), kernel.NewUUID(),
			"Sam", "Reyes", "")

		assert.ErrorIs(t, err, commands.ErrRoleIsRequired)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd commands.CreateWorkerCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateWorkerCommandIsNotConstructed)
	})
}

func TestCreateWorkerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateWorkerCommand(kernel.NewUUID(), kernel.NewUUID(),
		"Sam", "Reyes", "technician")
	require.NoError(t, err)

	repo := new(MockWorkerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkerRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*worker.Worker")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkerCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	added := repo.Calls[0].Arguments.Get(1).(*worker.Worker)
	assert.True(t, added.ID().IsEqual(cmd.WorkerID()))
	assert.Equal(t, "Sam Reyes", added.FullName())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateWorkerCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateWorkerCommand(kernel.NewUUID(), kernel.NewUUID(),
		"Sam", "Reyes", "technician")
	require.NoError(t, err)

	storageErr := errors.New("connection reset")
	repo := new(MockWorkerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkerRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*worker.Worker")).Return(storageErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPersistenceFailed)
	assert.ErrorIs(t, err, storageErr)
}
