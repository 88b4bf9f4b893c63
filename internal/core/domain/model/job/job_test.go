package job_test

import (
	"testing"
	"time"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow(t *testing.T, startHour, endHour int) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.NewTimeWindow(
		time.Date(2025, 6, 2, startHour, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, endHour, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return w
}

func newTestJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Dana Laine",
		"hvac-repair",
		testWindow(t, 10, 12),
		[]kernel.UUID{kernel.NewUUID()},
		nil,
	)
	require.NoError(t, err)
	return j
}

func TestNewJob(t *testing.T) {
	id := kernel.NewUUID()
	providerID := kernel.NewUUID()
	workerID := kernel.NewUUID()
	estimate, err := kernel.NewMoney(25000)
	require.NoError(t, err)

	t.Run("valid_job_starts_scheduled", func(t *testing.T) {
		j, err := job.NewJob(id, providerID, "Dana Laine", "hvac-repair",
			testWindow(t, 10, 12), []kernel.UUID{workerID}, &estimate)

		require.NoError(t, err)
		assert.Equal(t, job.Scheduled, j.Status())
		assert.Equal(t, id, j.ID())
		assert.Equal(t, providerID, j.ProviderID())
		assert.True(t, j.IsAssignedTo(workerID))
		assert.False(t, j.IsUnassigned())
		assert.Equal(t, &estimate, j.EstimatedValue())
		assert.Nil(t, j.ActualValue())
	})

	t.Run("unassigned_job_is_valid", func(t *testing.T) {
		j, err := job.NewJob(id, providerID, "Dana Laine", "hvac-repair",
			testWindow(t, 10, 12), nil, nil)

		require.NoError(t, err)
		assert.True(t, j.IsUnassigned())
		assert.Empty(t, j.AssignedWorkerIDs())
	})

	t.Run("empty_customer_name_is_rejected", func(t *testing.T) {
		_, err := job.NewJob(id, providerID, "", "hvac-repair",
			testWindow(t, 10, 12), nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_service_type_is_rejected", func(t *testing.T) {
		_, err := job.NewJob(id, providerID, "Dana Laine", "",
			testWindow(t, 10, 12), nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed_window_is_rejected", func(t *testing.T) {
		_, err := job.NewJob(id, providerID, "Dana Laine", "hvac-repair",
			kernel.TimeWindow{}, nil, nil)

		require.Error(t, err)
	})

	t.Run("duplicate_worker_assignment_is_rejected", func(t *testing.T) {
		_, err := job.NewJob(id, providerID, "Dana Laine", "hvac-repair",
			testWindow(t, 10, 12), []kernel.UUID{workerID, workerID}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreJob(t *testing.T) {
	actual, err := kernel.NewMoney(31000)
	require.NoError(t, err)

	t.Run("restores_full_state", func(t *testing.T) {
		id := kernel.NewUUID()
		j, err := job.RestoreJob(id, kernel.NewUUID(), "Dana Laine", "hvac-repair",
			testWindow(t, 10, 12), job.Completed, nil, nil, &actual)

		require.NoError(t, err)
		assert.Equal(t, job.Completed, j.Status())
		assert.Equal(t, &actual, j.ActualValue())
	})

	t.Run("invalid_status_is_rejected", func(t *testing.T) {
		_, err := job.RestoreJob(kernel.NewUUID(), kernel.NewUUID(), "Dana Laine",
			"hvac-repair", testWindow(t, 10, 12), job.Unknown, nil, nil, nil)

		require.Error(t, err)
	})
}

func TestJob_Validate(t *testing.T) {
	t.Run("constructed_job_is_valid", func(t *testing.T) {
		require.NoError(t, newTestJob(t).Validate())
	})

	t.Run("literal_job_is_rejected", func(t *testing.T) {
		var j job.Job
		require.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)
	})

	t.Run("nil_job_is_rejected", func(t *testing.T) {
		var j *job.Job
		require.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)
	})
}

func TestJob_Reschedule(t *testing.T) {
	t.Run("moves_window_and_replaces_assignment", func(t *testing.T) {
		j := newTestJob(t)
		newWorker := kernel.NewUUID()
		newWindow := testWindow(t, 14, 16)

		err := j.Reschedule(newWindow, []kernel.UUID{newWorker})

		require.NoError(t, err)
		assert.True(t, j.Window().IsEqual(newWindow))
		assert.True(t, j.IsAssignedTo(newWorker))
		assert.Len(t, j.AssignedWorkerIDs(), 1)
	})

	t.Run("completed_job_cannot_be_rescheduled", func(t *testing.T) {
		j := newTestJob(t)
		advanceTo(t, j, job.Completed)
		original := j.Window()

		err := j.Reschedule(testWindow(t, 14, 16), nil)

		require.ErrorIs(t, err, job.ErrJobIsTerminal)
		assert.True(t, j.Window().IsEqual(original))
	})

	t.Run("cancelled_job_cannot_be_rescheduled", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.ChangeStatus(job.Cancelled))

		err := j.Reschedule(testWindow(t, 14, 16), nil)

		require.ErrorIs(t, err, job.ErrJobIsTerminal)
	})

	t.Run("unconstructed_window_is_rejected", func(t *testing.T) {
		j := newTestJob(t)

		err := j.Reschedule(kernel.TimeWindow{}, nil)

		require.Error(t, err)
	})
}

func TestJob_ChangeStatus(t *testing.T) {
	t.Run("walks_full_lifecycle", func(t *testing.T) {
		j := newTestJob(t)

		for _, next := range []job.Status{
			job.Dispatched, job.OnTheWay, job.InProgress, job.Completed,
		} {
			require.NoError(t, j.ChangeStatus(next))
			assert.Equal(t, next, j.Status())
		}
	})

	t.Run("skip_ahead_leaves_status_unchanged", func(t *testing.T) {
		j := newTestJob(t)

		err := j.ChangeStatus(job.Completed)

		require.ErrorIs(t, err, job.ErrInvalidTransition)
		assert.Equal(t, job.Scheduled, j.Status())
	})
}

func TestJob_Revenue(t *testing.T) {
	estimate, err := kernel.NewMoney(20000)
	require.NoError(t, err)
	actual, err := kernel.NewMoney(26000)
	require.NoError(t, err)

	t.Run("prefers_actual_value", func(t *testing.T) {
		j, err := job.RestoreJob(kernel.NewUUID(), kernel.NewUUID(), "Dana Laine",
			"hvac-repair", testWindow(t, 10, 12), job.Completed, nil, &estimate, &actual)
		require.NoError(t, err)

		require.NotNil(t, j.Revenue())
		assert.Equal(t, int64(26000), j.Revenue().Cents())
	})

	t.Run("falls_back_to_estimate", func(t *testing.T) {
		j, err := job.RestoreJob(kernel.NewUUID(), kernel.NewUUID(), "Dana Laine",
			"hvac-repair", testWindow(t, 10, 12), job.Completed, nil, &estimate, nil)
		require.NoError(t, err)

		require.NotNil(t, j.Revenue())
		assert.Equal(t, int64(20000), j.Revenue().Cents())
	})

	t.Run("nil_when_no_value_recorded", func(t *testing.T) {
		j := newTestJob(t)
		assert.Nil(t, j.Revenue())
	})
}

func TestJob_RecordActualValue(t *testing.T) {
	j := newTestJob(t)
	value, err := kernel.NewMoney(18500)
	require.NoError(t, err)

	require.NoError(t, j.RecordActualValue(value))

	require.NotNil(t, j.ActualValue())
	assert.Equal(t, int64(18500), j.ActualValue().Cents())
}

// advanceTo walks the job forward through the state machine until it reaches
// the target status.
func advanceTo(t *testing.T, j *job.Job, target job.Status) {
	t.Helper()
	for j.Status() != target {
		require.NoError(t, j.ChangeStatus(j.Status()+1))
	}
}
