package services

import (
	"fieldops/internal/core/domain/model/kernel"
)

// Conflict records one detected overlap: two jobs assigned to the same worker
// whose time windows share at least one instant.
type Conflict struct {
	WorkerID    kernel.UUID
	FirstJobID  kernel.UUID
	SecondJobID kernel.UUID
}

// ConflictDetector finds overlapping job pairs per worker.
//
// The scan is adjacent-only: for each worker the detector walks the
// start-time-sorted job list and tests consecutive pairs. Three jobs that all
// overlap produce two conflicts, one per adjacent pair. A job that overlaps
// job N+2 but not job N+1 is not reported; this is a deliberate contract
// choice, keeping the scan deterministic and linear rather than a full
// pairwise comparison.
//
// A job assigned to multiple workers is evaluated independently within each
// worker's list. Cancelled jobs never reach the detector because the
// occupancy index excludes them.
type ConflictDetector struct{}

// NewConflictDetector creates a detector.
func NewConflictDetector() ConflictDetector {
	return ConflictDetector{}
}

// Detect returns every adjacent-pair overlap in the indexed snapshot, in
// deterministic worker order.
func (d ConflictDetector) Detect(ix *OccupancyIndex) []Conflict {
	conflicts := make([]Conflict, 0)

	for _, workerID := range ix.WorkerIDs() {
		jobs := ix.WorkerJobs(workerID)
		for i := 0; i+1 < len(jobs); i++ {
			if jobs[i].Window().Overlaps(jobs[i+1].Window()) {
				conflicts = append(conflicts, Conflict{
					WorkerID:    workerID,
					FirstJobID:  jobs[i].ID(),
					SecondJobID: jobs[i+1].ID(),
				})
			}
		}
	}

	return conflicts
}

// Count returns the number of detected conflicts.
func (d ConflictDetector) Count(ix *OccupancyIndex) int {
	return len(d.Detect(ix))
}
