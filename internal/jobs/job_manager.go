// Package jobs provides scheduled background tasks for the packing pipeline.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The single job today is the periodic backlog refresh; JobManager keeps the
// start/stop surface stable as jobs are added.
package jobs

import (
	"fmt"
	"log/slog"

	"packline/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	backlogRefreshJob *BacklogRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	refreshBacklogHandler commands.RefreshBacklogCommandHandler,
	refreshSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		backlogRefreshJob: NewBacklogRefreshJob(refreshBacklogHandler, refreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.backlogRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start backlog refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.backlogRefreshJob.Stop()
}
