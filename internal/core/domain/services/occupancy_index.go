package services

import (
	"sort"
	"time"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
)

// slotKey identifies one hour-of-day cell on one calendar date.
type slotKey struct {
	year  int
	month time.Month
	day   int
	hour  int
}

func slotKeyFor(t time.Time, hour int) slotKey {
	y, m, d := t.Date()
	return slotKey{year: y, month: m, day: d, hour: hour}
}

// OccupancyIndex groups a job snapshot two ways: by (date, hour) slot of the
// job's start time, for calendar cell rendering, and by assigned worker with
// each worker's jobs sorted by start time, for conflict scanning and
// per-worker workload sums.
//
// The index is rebuilt from scratch on every snapshot; there is no
// incremental update contract. Cancelled jobs are excluded before grouping.
type OccupancyIndex struct {
	bySlot   map[slotKey][]*job.Job
	byWorker map[kernel.UUID][]*job.Job
}

// BuildOccupancyIndex constructs the index from a job snapshot.
func BuildOccupancyIndex(jobs []*job.Job) *OccupancyIndex {
	ix := &OccupancyIndex{
		bySlot:   make(map[slotKey][]*job.Job),
		byWorker: make(map[kernel.UUID][]*job.Job),
	}

	for _, j := range jobs {
		if j.Validate() != nil || j.Status() == job.Cancelled {
			continue
		}

		start := j.Window().Start()
		key := slotKeyFor(start, start.Hour())
		ix.bySlot[key] = append(ix.bySlot[key], j)

		for _, workerID := range j.AssignedWorkerIDs() {
			ix.byWorker[workerID] = append(ix.byWorker[workerID], j)
		}
	}

	for _, jobs := range ix.byWorker {
		sort.Slice(jobs, func(a, b int) bool {
			return jobs[a].Window().Start().Before(jobs[b].Window().Start())
		})
	}

	return ix
}

// JobsAt returns the jobs whose start time falls in the given hour slot on
// the given date.
func (ix *OccupancyIndex) JobsAt(date time.Time, hour int) []*job.Job {
	return ix.bySlot[slotKeyFor(date, hour)]
}

// WorkerJobs returns the worker's non-cancelled jobs sorted by start time.
func (ix *OccupancyIndex) WorkerJobs(workerID kernel.UUID) []*job.Job {
	return ix.byWorker[workerID]
}

// WorkerIDs returns the distinct workers with at least one non-cancelled
// assignment, in a deterministic order.
func (ix *OccupancyIndex) WorkerIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(ix.byWorker))
	for id := range ix.byWorker {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool {
		return ids[a].String() < ids[b].String()
	})
	return ids
}

// ActiveWorkerCount returns the number of distinct workers with at least one
// non-cancelled assignment in the snapshot.
func (ix *OccupancyIndex) ActiveWorkerCount() int {
	return len(ix.byWorker)
}
