// Package jobs provides scheduled background tasks for the marketplace backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path should not pay for.
//
// # Available Jobs
//
// 1. StatsRefreshJob - Recomputes the denormalized per-location rollups (vendor
// counts, order counts, revenue) from the live vendors and orders
// 2. NotificationCleanupJob - Drops read agent notifications older than the
// retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		refreshStatsHandler, purgeNotificationsHandler,
//		statsSchedule, cleanupSchedule, notificationTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs take six-field cron expressions (with a seconds field). The
// schedules and the notification retention window come from configuration.
package jobs
