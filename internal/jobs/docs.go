// Package jobs provides scheduled background tasks for the relay-point
// parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. UnclaimedParcelJob - Runs daily to remind recipients of parcels that
// have been waiting at a relay point longer than the configured threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(remindHandler, thresholdDays, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reminder sweep uses the cron expression "0 0 8 * * *" and runs once a
// day at 08:00 server time. Each sweep sends at most one reminder per
// overdue parcel.
//
// # Error Handling
//
// - Sweep errors are logged and the job retries on the next scheduled run
// - Failed job starts stop any already running jobs
package jobs
