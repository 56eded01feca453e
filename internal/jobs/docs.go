// Package jobs provides scheduled background tasks for the booking platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. RecoveryEvictionJob - Runs every minute to drop expired account recovery codes
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(recoveryStore, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job bodies log failures and keep the schedule running; a failed job start
// aborts StartAll with the underlying error.
package jobs
