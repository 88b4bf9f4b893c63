package services

import (
	"time"

	"fieldops/internal/core/domain/model/blockedtime"
	"fieldops/internal/core/domain/model/kernel"
)

// BlockedInterval is a blocked-time record projected onto a single date and
// clamped to the visible calendar window. StartHour is inclusive, EndHour
// exclusive: hour H is blocked iff StartHour <= H < EndHour.
type BlockedInterval struct {
	StartHour int
	EndHour   int
	IsAllDay  bool
}

// BlockedIntervalProjector turns a blocked-time record plus a query date into
// a renderable interval. Every view that draws blocked overlays and every
// "is this slot free" check goes through this one projection so day and week
// views cannot drift apart.
type BlockedIntervalProjector struct{}

// NewBlockedIntervalProjector creates a projector.
func NewBlockedIntervalProjector() BlockedIntervalProjector {
	return BlockedIntervalProjector{}
}

// Project computes the blocked interval for the given date. The second return
// value is false when the record does not apply: its date range misses the
// query date, or clamping to the visible window collapses the interval.
//
// An all-day block projects to the full visible window. A timed block has its
// hour endpoints clamped into the window; a "00:00" end time means end-of-day
// and is widened to hour 24 before clamping, so blocks running past midnight
// still cover the evening.
func (p BlockedIntervalProjector) Project(
	block *blockedtime.BlockedTime, date time.Time,
) (BlockedInterval, bool) {
	if err := block.Validate(); err != nil {
		return BlockedInterval{}, false
	}
	if !block.CoversDate(date) {
		return BlockedInterval{}, false
	}

	if block.IsAllDay() {
		return BlockedInterval{
			StartHour: kernel.VisibleStartHour,
			EndHour:   kernel.VisibleEndHour,
			IsAllDay:  true,
		}, true
	}

	startHour := block.StartTime().Hour()
	endHour := block.EndTime().Hour()
	if block.EndTime().IsMidnight() {
		endHour = kernel.EndOfDayHour
	}

	startHour = kernel.ClampToVisibleWindow(startHour)
	endHour = kernel.ClampToVisibleWindow(endHour)

	// Clamping can collapse a block that lies entirely outside the visible
	// window (e.g. 22:00-23:00); such a block is not renderable.
	if endHour <= startHour {
		return BlockedInterval{}, false
	}

	return BlockedInterval{StartHour: startHour, EndHour: endHour}, true
}

// IsHourBlocked answers "is hour H on date D blocked for this worker". It is
// used to refuse slot selection and drop targets. A nil workerID asks about
// the provider calendar as a whole, which only provider-wide blocks cover.
func (p BlockedIntervalProjector) IsHourBlocked(
	blocks []*blockedtime.BlockedTime, date time.Time, hour int, workerID *kernel.UUID,
) bool {
	for _, block := range blocks {
		if !block.AppliesToWorker(workerID) {
			continue
		}

		interval, ok := p.Project(block, date)
		if !ok {
			continue
		}
		if interval.IsAllDay {
			return true
		}
		if hour >= interval.StartHour && hour < interval.EndHour {
			return true
		}
	}
	return false
}
