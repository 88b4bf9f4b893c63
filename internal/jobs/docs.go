// Package jobs provides scheduled background tasks for the scheduling engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep an eye on the provider calendar between user interactions.
//
// # Available Jobs
//
// 1. ConflictAuditJob - Runs every five minutes to recompute today's double-bookings and log each offender
// 2. CapacityReportJob - Runs hourly to log today's utilization and capacity numbers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the read handler and audited provider
//	jobManager := jobs.NewJobManager(dailyScheduleHandler, providerID, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs are read-only: they take a fresh snapshot through the daily
// schedule query on every run and never write back. A failed run is logged
// and the next tick starts from scratch.
package jobs
