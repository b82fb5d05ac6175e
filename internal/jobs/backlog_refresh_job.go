package jobs

import (
	"context"
	"log/slog"

	"packline/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BacklogRefreshJob runs the backlog planning pass on a schedule, so new
// orders and intakes turn into board tasks without waiting for an operator
// to trigger a refresh over HTTP.
type BacklogRefreshJob struct {
	handler  commands.RefreshBacklogCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBacklogRefreshJob creates a new job for periodic backlog refreshes.
// The schedule is a six-field cron expression with a seconds column.
func NewBacklogRefreshJob(
	handler commands.RefreshBacklogCommandHandler,
	schedule string,
	logger *slog.Logger,
) *BacklogRefreshJob {
	return &BacklogRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "backlog_refresh_job"),
	}
}

// Start begins the backlog refresh job on its configured schedule.
func (j *BacklogRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshBacklogCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Backlog refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the backlog refresh job.
func (j *BacklogRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog refresh job stopped")
}
