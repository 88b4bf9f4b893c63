package http

import (
	"time"

	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewJob is the request body for creating a job.
type NewJob struct {
	ProviderID          string    `json:"providerId"`
	CustomerName        string    `json:"customerName"`
	ServiceType         string    `json:"serviceType"`
	Start               time.Time `json:"start"`
	End                 time.Time `json:"end"`
	AssignedWorkerIDs   []string  `json:"assignedWorkerIds"`
	EstimatedValueCents *int64    `json:"estimatedValueCents"`
}

// NewWorker is the request body for creating a worker.
type NewWorker struct {
	ProviderID string `json:"providerId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
}

// RescheduleRequest is the request body for the drag-drop reschedule. The
// target date is a calendar day ("2006-01-02"), the hour a whole hour within
// the visible window. WorkerID, when set, reassigns the job to that single
// worker as part of the move.
type RescheduleRequest struct {
	ProviderID string  `json:"providerId"`
	TargetDate string  `json:"targetDate"`
	TargetHour int     `json:"targetHour"`
	WorkerID   *string `json:"workerId"`
}

// StatusChangeRequest is the request body for advancing a job's status.
type StatusChangeRequest struct {
	Status string `json:"status"`
}

// JobValueRequest is the request body for recording a job's actual value.
type JobValueRequest struct {
	ActualValueCents int64 `json:"actualValueCents"`
}

// NewBlockedTime is the request body for blocking time off. StartTime and
// EndTime are "HH:MM" labels; both empty means an all-day block. An empty
// WorkerID blocks the whole provider calendar.
type NewBlockedTime struct {
	ProviderID string  `json:"providerId"`
	WorkerID   *string `json:"workerId"`
	FromDate   string  `json:"fromDate"`
	ToDate     string  `json:"toDate"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Reason     string  `json:"reason"`
}

// Job is one job as rendered on the calendar.
type Job struct {
	ID                string    `json:"id"`
	CustomerName      string    `json:"customerName"`
	ServiceType       string    `json:"serviceType"`
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	Status            string    `json:"status"`
	AssignedWorkerIDs []string  `json:"assignedWorkerIds"`
}

// BlockedOverlay is one blocked-time record projected onto the queried date.
type BlockedOverlay struct {
	BlockID   string  `json:"blockId"`
	WorkerID  *string `json:"workerId"`
	StartHour int     `json:"startHour"`
	EndHour   int     `json:"endHour"`
	IsAllDay  bool    `json:"isAllDay"`
	Reason    string  `json:"reason"`
}

// Conflict is one detected double-booking.
type Conflict struct {
	WorkerID    string `json:"workerId"`
	FirstJobID  string `json:"firstJobId"`
	SecondJobID string `json:"secondJobId"`
}

// DailyStats is the capacity summary for one day.
type DailyStats struct {
	TotalJobs            int `json:"totalJobs"`
	TotalHours           int `json:"totalHours"`
	TotalCapacity        int `json:"totalCapacity"`
	AvgCapacityPercent   int `json:"avgCapacityPercent"`
	ActiveWorkers        int `json:"activeWorkers"`
	UnassignedJobs       int `json:"unassignedJobs"`
	Conflicts            int `json:"conflicts"`
	OverbookedWorkers    int `json:"overbookedWorkers"`
	UnderutilizedWorkers int `json:"underutilizedWorkers"`
}

// DailySchedule is the full day view.
type DailySchedule struct {
	Jobs      []Job            `json:"jobs"`
	Overlays  []BlockedOverlay `json:"overlays"`
	Conflicts []Conflict       `json:"conflicts"`
	Stats     DailyStats       `json:"stats"`
}

// MonthlyStats is the revenue and utilization summary for one month.
type MonthlyStats struct {
	TotalRevenueCents  int64 `json:"totalRevenueCents"`
	CompletedJobs      int   `json:"completedJobs"`
	ScheduledJobs      int   `json:"scheduledJobs"`
	UtilizationPercent int   `json:"utilizationPercent"`
}

// Worker is one roster entry.
type Worker struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func jobFromSummary(summary queries.JobSummary) Job {
	return Job{
		ID:                summary.ID.String(),
		CustomerName:      summary.CustomerName,
		ServiceType:       summary.ServiceType,
		Start:             summary.Start,
		End:               summary.End,
		Status:            summary.Status,
		AssignedWorkerIDs: uuidStrings(summary.AssignedWorkerIDs),
	}
}

func overlayFromQuery(overlay queries.BlockedOverlay) BlockedOverlay {
	var workerID *string
	if overlay.WorkerID != nil {
		s := overlay.WorkerID.String()
		workerID = &s
	}
	return BlockedOverlay{
		BlockID:   overlay.BlockID.String(),
		WorkerID:  workerID,
		StartHour: overlay.StartHour,
		EndHour:   overlay.EndHour,
		IsAllDay:  overlay.IsAllDay,
		Reason:    overlay.Reason,
	}
}

func conflictFromService(conflict services.Conflict) Conflict {
	return Conflict{
		WorkerID:    conflict.WorkerID.String(),
		FirstJobID:  conflict.FirstJobID.String(),
		SecondJobID: conflict.SecondJobID.String(),
	}
}

func statsFromService(stats services.DailyStats) DailyStats {
	return DailyStats{
		TotalJobs:            stats.TotalJobs,
		TotalHours:           stats.TotalHours,
		TotalCapacity:        stats.TotalCapacity,
		AvgCapacityPercent:   stats.AvgCapacityPercent,
		ActiveWorkers:        stats.ActiveWorkers,
		UnassignedJobs:       stats.UnassignedJobs,
		Conflicts:            stats.Conflicts,
		OverbookedWorkers:    stats.OverbookedWorkers,
		UnderutilizedWorkers: stats.UnderutilizedWorkers,
	}
}

func uuidStrings(ids []kernel.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
