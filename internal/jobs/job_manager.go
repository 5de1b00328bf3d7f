package jobs

import (
	"fmt"
	"log/slog"

	"tradefinance/internal/core/application/usecases/commands"
	"tradefinance/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deadlineExpiryJob *DeadlineExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes use case handlers as dependencies to wire up the job execution.
func NewJobManager(
	allOrdersHandler queries.GetAllOrdersQueryHandler,
	checkDeliveryDateHandler commands.CheckDeliveryDateCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deadlineExpiryJob: NewDeadlineExpiryJob(allOrdersHandler, checkDeliveryDateHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deadlineExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start deadline expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deadlineExpiryJob.Stop()
}
