package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationCleanupJob drops read notifications older than the retention
// window so the feed table does not grow without bound.
type NotificationCleanupJob struct {
	handler  commands.PurgeNotificationsCommandHandler
	schedule string
	ttl      time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationCleanupJob creates a job that purges read notifications on
// the given cron schedule (six-field spec with seconds).
func NewNotificationCleanupJob(
	handler commands.PurgeNotificationsCommandHandler,
	schedule string,
	ttl time.Duration,
	logger *slog.Logger,
) *NotificationCleanupJob {
	return &NotificationCleanupJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_cleanup_job"),
	}
}

// Run performs one cleanup pass, purging read notifications that fell out of
// the retention window.
func (j *NotificationCleanupJob) Run(ctx context.Context) {
	cmd, err := commands.NewPurgeNotificationsCommand(time.Now().Add(-j.ttl))
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification cleanup command invalid", "error", err)
		return
	}

	purged, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification cleanup failed", "error", err)
		return
	}
	if purged > 0 {
		j.logger.InfoContext(ctx, "Purged notifications", "count", purged)
	}
}

// Start begins the notification cleanup job on its schedule.
func (j *NotificationCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Notification cleanup job started", "schedule", j.schedule, "ttl", j.ttl)
	return nil
}

// Stop stops the notification cleanup job.
func (j *NotificationCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification cleanup job stopped")
}
