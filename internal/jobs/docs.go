// Package jobs provides scheduled background tasks for the trade finance
// workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the escrow lifecycle.
//
// # Available Jobs
//
// 1. DeadlineExpiryJob - Runs every minute to expire orders whose latest
// delivery date elapsed before delivery closed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(allOrdersHandler, checkDeliveryDateHandler, logger)
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
// The expiry sweep ignores orders that close between enumeration and
// check; every other failure is logged and the sweep moves on to the next
// order, so one bad record never stalls the schedule.
package jobs
