// Package jobs provides scheduled background tasks for the terminal.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required while the terminal is running.
//
// # Available Jobs
//
// 1. OrderPollJob - Runs every five seconds to fetch the active orders from
// the backend and replace the local snapshot
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshOrdersHandler, logger)
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
// The poll job uses the cron expression "*/5 * * * * *" which means it runs
// every five seconds. The board and the dashboard recompute their views from
// whatever the latest snapshot holds, so a missed tick only delays freshness.
//
// # Error Handling
//
// A failed poll is logged and leaves the previous snapshot in place; the
// next tick retries from scratch.
package jobs
