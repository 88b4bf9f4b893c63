package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fieldops/internal/core/domain/model/blockedtime"
	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
)

// testDate returns a day in June 2025 at midnight UTC.
func testDate(day int) time.Time {
	return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
}

func testWindow(t *testing.T, day, startHour, endHour int) kernel.TimeWindow {
	t.Helper()

	start := time.Date(2025, time.June, day, startHour, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, day, endHour, 0, 0, 0, time.UTC)
	window, err := kernel.NewTimeWindow(start, end)
	require.NoError(t, err)
	return window
}

func newTestJob(t *testing.T, window kernel.TimeWindow, workerIDs ...kernel.UUID) *job.Job {
	t.Helper()

	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "Dana Laine",
		"hvac-repair", window, workerIDs, nil)
	require.NoError(t, err)
	return j
}

func newTestWorker(t *testing.T, id kernel.UUID) *worker.Worker {
	t.Helper()

	w, err := worker.RestoreWorker(id, kernel.NewUUID(), "Sam", "Reyes", "technician")
	require.NoError(t, err)
	return w
}

// completeJob walks a job through the lifecycle to Completed.
func completeJob(t *testing.T, j *job.Job) {
	t.Helper()

	for j.Status() != job.Completed {
		require.NoError(t, j.ChangeStatus(j.Status()+1))
	}
}

func allDayBlock(t *testing.T, workerID *kernel.UUID, fromDay, toDay int) *blockedtime.BlockedTime {
	t.Helper()

	b, err := blockedtime.NewBlockedTime(kernel.NewUUID(), kernel.NewUUID(), workerID,
		testDate(fromDay), testDate(toDay), nil, nil, "vacation")
	require.NoError(t, err)
	return b
}

func timedBlock(
	t *testing.T, workerID *kernel.UUID, fromDay, toDay int, startTime, endTime string,
) *blockedtime.BlockedTime {
	t.Helper()

	start, err := kernel.ParseClockTime(startTime)
	require.NoError(t, err)
	end, err := kernel.ParseClockTime(endTime)
	require.NoError(t, err)

	b, err := blockedtime.NewBlockedTime(kernel.NewUUID(), kernel.NewUUID(), workerID,
		testDate(fromDay), testDate(toDay), &start, &end, "equipment service")
	require.NoError(t, err)
	return b
}
