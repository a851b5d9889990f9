// Package jobs provides scheduled background tasks for the ordering
// workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleOrderReminderJob - Runs every minute to re-raise orders still in
// the initial status past the staleness threshold, so unattended orders do
// not silently rot.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(staleOrdersHandler, dispatcher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
