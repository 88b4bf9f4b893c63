// Package job provides the domain entity and business logic for scheduled
// field work. It implements the Job aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Job: the aggregate root managing identity, time window, worker
//     assignment, and monetary value
//   - Status: a state machine enforcing valid job status transitions
//
// Key business rules:
//   - A job's time window always satisfies start < end
//   - Status moves forward one step at a time: scheduled -> dispatched ->
//     on-the-way -> in-progress -> completed
//   - Cancellation is allowed from any non-terminal status
//   - Completed and cancelled are terminal; terminal jobs cannot be
//     rescheduled or reassigned
//   - Rescheduling preserves the job's duration
//
// The package follows Domain-Driven Design principles: the engine never
// mutates a persisted job directly, it computes the next state on a loaded
// aggregate and delegates the write to the persistence adapter.
package job
