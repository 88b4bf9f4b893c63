package services

import (
	"errors"
	"fmt"
	"time"

	"fieldops/internal/core/domain/model/blockedtime"
	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

// ErrSlotUnavailable signals that a move cannot be applied because the target
// slot is blocked or already occupied by another job of the same worker.
var ErrSlotUnavailable = errors.New("target slot is unavailable")

// DropTarget identifies where a job is being moved to. WorkerID is nil when
// the move keeps the job's current assignment and only changes the time.
type DropTarget struct {
	Date     time.Time
	Hour     int
	WorkerID *kernel.UUID
}

// MovePlan is the validated outcome of a reschedule request. NoChange is set
// when the target equals the job's current position, in which case applying
// the plan is a no-op.
type MovePlan struct {
	JobID             kernel.UUID
	Window            kernel.TimeWindow
	AssignedWorkerIDs []kernel.UUID
	NoChange          bool
}

// ReschedulePlanner validates a drag-and-drop move against the schedule
// snapshot before any state changes.
//
// A plan preserves the job's duration and start minute; only the date, the
// hour, and optionally the assigned worker change. The planner rejects moves
// onto blocked time and moves that would overlap another job of the target
// worker. It never mutates the job; applying a plan is the caller's
// transaction.
type ReschedulePlanner struct {
	projector BlockedIntervalProjector
}

// NewReschedulePlanner creates a planner.
func NewReschedulePlanner() ReschedulePlanner {
	return ReschedulePlanner{projector: NewBlockedIntervalProjector()}
}

// PlanMove validates moving the job to the target slot given the current
// schedule snapshot and active blocked times.
//
// The snapshot may include the job being moved; it is excluded from conflict
// checks. Planning the same move twice produces the same plan.
func (p ReschedulePlanner) PlanMove(
	j *job.Job,
	target DropTarget,
	snapshot []*job.Job,
	blocks []*blockedtime.BlockedTime,
) (MovePlan, error) {
	if err := j.Validate(); err != nil {
		return MovePlan{}, err
	}
	if j.Status().IsTerminal() {
		return MovePlan{}, fmt.Errorf("%w: job %s is %s", job.ErrJobIsTerminal, j.ID(), j.Status())
	}
	if !kernel.InVisibleWindow(target.Hour) {
		return MovePlan{}, errs.NewValueIsOutOfRangeError(
			"target hour", target.Hour, kernel.VisibleStartHour, kernel.VisibleEndHour)
	}

	current := j.Window()
	newStart := time.Date(
		target.Date.Year(), target.Date.Month(), target.Date.Day(),
		target.Hour, current.Start().Minute(), 0, 0, current.Start().Location())
	window, err := current.MoveTo(newStart)
	if err != nil {
		return MovePlan{}, err
	}

	assigned := j.AssignedWorkerIDs()
	if target.WorkerID != nil {
		assigned = []kernel.UUID{*target.WorkerID}
	}

	plan := MovePlan{
		JobID:             j.ID(),
		Window:            window,
		AssignedWorkerIDs: assigned,
	}
	if window.IsEqual(current) && sameWorkerSet(assigned, j.AssignedWorkerIDs()) {
		plan.NoChange = true
		return plan, nil
	}

	if err := p.checkBlocked(window, assigned, blocks); err != nil {
		return MovePlan{}, err
	}
	if err := p.checkConflicts(j.ID(), window, assigned, snapshot); err != nil {
		return MovePlan{}, err
	}

	return plan, nil
}

// checkBlocked rejects the move when any hour of the new window is blocked
// for any of the target workers. Unassigned jobs are still checked against
// provider-wide blocks.
func (p ReschedulePlanner) checkBlocked(
	window kernel.TimeWindow,
	assigned []kernel.UUID,
	blocks []*blockedtime.BlockedTime,
) error {
	workerIDs := make([]*kernel.UUID, 0, len(assigned))
	for i := range assigned {
		workerIDs = append(workerIDs, &assigned[i])
	}
	if len(workerIDs) == 0 {
		workerIDs = append(workerIDs, nil)
	}

	firstHour := window.Start().Hour()
	lastHour := lastCoveredHour(window)
	for _, workerID := range workerIDs {
		for hour := firstHour; hour <= lastHour; hour++ {
			if p.projector.IsHourBlocked(blocks, window.Start(), hour, workerID) {
				return fmt.Errorf("%w: hour %d is blocked", ErrSlotUnavailable, hour)
			}
		}
	}
	return nil
}

// checkConflicts rejects the move when the new window overlaps any other job
// of a target worker.
func (p ReschedulePlanner) checkConflicts(
	jobID kernel.UUID,
	window kernel.TimeWindow,
	assigned []kernel.UUID,
	snapshot []*job.Job,
) error {
	others := make([]*job.Job, 0, len(snapshot))
	for _, other := range snapshot {
		if !other.ID().IsEqual(jobID) {
			others = append(others, other)
		}
	}
	ix := BuildOccupancyIndex(others)

	for _, workerID := range assigned {
		for _, other := range ix.WorkerJobs(workerID) {
			if window.Overlaps(other.Window()) {
				return fmt.Errorf("%w: overlaps job %s", ErrSlotUnavailable, other.ID())
			}
		}
	}
	return nil
}

// lastCoveredHour returns the last hour slot the window touches on its start
// date. A window ending exactly on the hour does not cover that hour.
func lastCoveredHour(window kernel.TimeWindow) int {
	end := window.End()
	if !kernel.SameDate(window.Start(), end) {
		return kernel.EndOfDayHour - 1
	}
	hour := end.Hour()
	if end.Minute() == 0 && end.Second() == 0 {
		hour--
	}
	return hour
}

func sameWorkerSet(a, b []kernel.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].IsEqual(b[i]) {
			return false
		}
	}
	return true
}
