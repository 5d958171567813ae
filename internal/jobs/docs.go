// Package jobs provides scheduled background tasks for the delivery
// system, implemented as cron jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PendingAssignmentJob runs every ten seconds and retries partner
// assignment for orders still waiting in requested status.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(assignPendingOrderHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The assignment job ignores expected business errors (empty queue, no
// eligible partner); everything else is logged as a system issue.
package jobs
