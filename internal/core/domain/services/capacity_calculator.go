package services

import (
	"math"
	"time"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
)

// Capacity policy constants. These are part of the engine's contract with the
// dashboard, not tunables.
const (
	// StandardWorkDayHours is one full working day per worker.
	StandardWorkDayHours = 8
	// OverbookedThresholdPercent marks a worker as overbooked when their
	// scheduled hours exceed this share of a standard day.
	OverbookedThresholdPercent = 90
	// UnderutilizedThresholdPercent marks a worker as underutilized below
	// this share of a standard day.
	UnderutilizedThresholdPercent = 40
	// WorkingDaysPerMonth is the fixed policy constant used by monthly
	// utilization, independent of the actual calendar.
	WorkingDaysPerMonth = 22
)

// DailyStats is the capacity read model for one provider calendar day.
type DailyStats struct {
	TotalJobs            int
	TotalHours           int
	TotalCapacity        int
	AvgCapacityPercent   int
	ActiveWorkers        int
	UnassignedJobs       int
	Conflicts            int
	OverbookedWorkers    int
	UnderutilizedWorkers int
}

// MonthlyStats is the revenue and utilization read model for one calendar
// month.
type MonthlyStats struct {
	TotalRevenueCents  int64
	CompletedJobs      int
	ScheduledJobs      int
	UtilizationPercent int
}

// CapacityCalculator aggregates scheduled hours, capacity, and utilization
// over a snapshot. All methods are pure: calling them twice on the same
// snapshot returns identical results.
type CapacityCalculator struct {
	detector ConflictDetector
}

// NewCapacityCalculator creates a calculator.
func NewCapacityCalculator() CapacityCalculator {
	return CapacityCalculator{detector: NewConflictDetector()}
}

// DailyStats computes the capacity dashboard numbers for one date.
//
// Selected jobs are the non-cancelled jobs whose start time falls on the
// date. Capacity is derived from the larger of the active worker count and
// the total team size, times the standard working day. Overbooked and
// underutilized counts compare each worker's scheduled hours against the
// policy thresholds; workers without a single job that day count as
// underutilized, not overbooked.
func (c CapacityCalculator) DailyStats(
	jobs []*job.Job, workers []*worker.Worker, date time.Time,
) DailyStats {
	selected := selectJobsOnDate(jobs, date)
	ix := BuildOccupancyIndex(selected)

	var totalHours float64
	for _, j := range selected {
		totalHours += j.Window().DurationHours()
	}

	activeWorkers := ix.ActiveWorkerCount()
	teamSize := len(workers)
	totalCapacity := max(activeWorkers, teamSize) * StandardWorkDayHours

	avgCapacityPercent := 0
	if totalCapacity > 0 {
		avgCapacityPercent = roundToInt(totalHours / float64(totalCapacity) * 100)
	}

	unassigned := 0
	for _, j := range selected {
		if j.IsUnassigned() {
			unassigned++
		}
	}

	hoursByWorker := make(map[kernel.UUID]float64, activeWorkers)
	for _, workerID := range ix.WorkerIDs() {
		var hours float64
		for _, j := range ix.WorkerJobs(workerID) {
			hours += j.Window().DurationHours()
		}
		hoursByWorker[workerID] = hours
	}

	overbooked := 0
	for _, hours := range hoursByWorker {
		if utilizationPercent(hours) > OverbookedThresholdPercent {
			overbooked++
		}
	}

	underutilized := 0
	for _, w := range workers {
		if utilizationPercent(hoursByWorker[w.ID()]) < UnderutilizedThresholdPercent {
			underutilized++
		}
	}

	return DailyStats{
		TotalJobs:            len(selected),
		TotalHours:           roundToInt(totalHours),
		TotalCapacity:        totalCapacity,
		AvgCapacityPercent:   avgCapacityPercent,
		ActiveWorkers:        activeWorkers,
		UnassignedJobs:       unassigned,
		Conflicts:            c.detector.Count(ix),
		OverbookedWorkers:    overbooked,
		UnderutilizedWorkers: underutilized,
	}
}

// MonthlyStats computes revenue and utilization for the month containing the
// given instant.
//
// Revenue sums the actual value of completed jobs, falling back to the
// estimate when no actual was recorded. Utilization relates hours worked on
// completed jobs to the team's monthly capacity under the fixed
// working-days-per-month policy.
func (c CapacityCalculator) MonthlyStats(
	jobs []*job.Job, workers []*worker.Worker, month time.Time,
) MonthlyStats {
	var (
		revenueCents   int64
		completedCount int
		scheduledCount int
		hoursWorked    float64
	)

	for _, j := range jobs {
		if j.Validate() != nil || !kernel.SameMonth(j.Window().Start(), month) {
			continue
		}

		if j.Status() != job.Cancelled {
			scheduledCount++
		}
		if j.Status() != job.Completed {
			continue
		}

		completedCount++
		hoursWorked += j.Window().DurationHours()
		if value := j.Revenue(); value != nil {
			revenueCents += value.Cents()
		}
	}

	utilization := 0
	monthlyCapacity := float64(len(workers) * StandardWorkDayHours * WorkingDaysPerMonth)
	if monthlyCapacity > 0 {
		utilization = roundToInt(hoursWorked / monthlyCapacity * 100)
	}

	return MonthlyStats{
		TotalRevenueCents:  revenueCents,
		CompletedJobs:      completedCount,
		ScheduledJobs:      scheduledCount,
		UtilizationPercent: utilization,
	}
}

// selectJobsOnDate filters the snapshot down to valid, non-cancelled jobs
// starting on the given date.
func selectJobsOnDate(jobs []*job.Job, date time.Time) []*job.Job {
	selected := make([]*job.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Validate() != nil || j.Status() == job.Cancelled {
			continue
		}
		if j.Window().StartsOnDate(date) {
			selected = append(selected, j)
		}
	}
	return selected
}

func utilizationPercent(hours float64) float64 {
	return hours / StandardWorkDayHours * 100
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}
