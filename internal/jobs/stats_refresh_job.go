package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StatsRefreshJob periodically recomputes the denormalized per-location
// rollups (vendor counts, order counts, revenue) from the live aggregates.
type StatsRefreshJob struct {
	handler  commands.RefreshLocationStatsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatsRefreshJob creates a job that refreshes location stats on the given
// cron schedule (six-field spec with seconds).
func NewStatsRefreshJob(
	handler commands.RefreshLocationStatsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *StatsRefreshJob {
	return &StatsRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stats_refresh_job"),
	}
}

// Start begins the stats refresh job on its schedule.
func (j *StatsRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshLocationStatsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Location stats refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Location stats refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the stats refresh job.
func (j *StatsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Location stats refresh job stopped")
}
