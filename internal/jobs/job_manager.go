package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statsRefreshJob        *StatsRefreshJob
	notificationCleanupJob *NotificationCleanupJob
}

// NewJobManager creates a job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	refreshStatsHandler commands.RefreshLocationStatsCommandHandler,
	purgeNotificationsHandler commands.PurgeNotificationsCommandHandler,
	statsSchedule string,
	cleanupSchedule string,
	notificationTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statsRefreshJob: NewStatsRefreshJob(refreshStatsHandler, statsSchedule, logger),
		notificationCleanupJob: NewNotificationCleanupJob(
			purgeNotificationsHandler, cleanupSchedule, notificationTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats refresh job: %w", err)
	}

	if err := jm.notificationCleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.statsRefreshJob.Stop()
		return fmt.Errorf("failed to start notification cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsRefreshJob.Stop()
	jm.notificationCleanupJob.Stop()
}
