// Package jobs provides scheduled background tasks for the fulfillment
// dashboard.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order board.
//
// # Available Jobs
//
// 1. DueDateSweepJob - Runs every minute to find non-terminal items whose
// due date has passed and surface them in the logs for the operations team.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(overdueItemsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
