// Package services provides the domain services of the scheduling engine:
// pure computations over an immutable snapshot of jobs, workers, and
// blocked-time records. Nothing here suspends, persists, or keeps hidden
// state; every function is re-derivable from its inputs, so recomputing on a
// fresh snapshot always yields consistent results.
//
// The package includes:
//   - BlockedIntervalProjector: projects a blocked-time record onto a query
//     date, clamped to the visible calendar window
//   - OccupancyIndex: groups a job snapshot by (date, hour) slot and by worker
//   - ConflictDetector: finds overlapping job pairs per worker
//   - CapacityCalculator: daily and monthly capacity/utilization statistics
//   - ReschedulePlanner: validates a drag-and-drop move and derives the
//     duration-preserving new time window
//
// Domain services coordinate between aggregates, implementing logic that
// spans multiple entities following Domain-Driven Design principles.
package services
