package jobs

import (
	"fmt"
	"log/slog"

	"printflow/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dueDateSweepJob *DueDateSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overdueItemsHandler queries.GetOverdueItemsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dueDateSweepJob: NewDueDateSweepJob(overdueItemsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dueDateSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start due date sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dueDateSweepJob.Stop()
}
