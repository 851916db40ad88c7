package jobs_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/adapters/out/memstore"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/jobs"
)

func storedNotification(t *testing.T, store *memstore.Store, age time.Duration, read bool) *notification.Notification {
	t.Helper()

	ctx := t.Context()
	n, err := notification.RestoreNotification(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		notification.TypeAssignment, "New delivery assigned", time.Now().UTC().Add(-age), read)
	require.NoError(t, err)

	uow := memstore.NewUnitOfWorkFactory(store).Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.NotificationRepository().Add(ctx, n))
	require.NoError(t, uow.Commit(ctx))
	return n
}

func TestNotificationCleanupJob_Run(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	agedOut := storedNotification(t, store, 48*time.Hour, true)
	agedOutUnread := storedNotification(t, store, 48*time.Hour, false)
	recent := storedNotification(t, store, time.Hour, true)

	handler := commands.NewPurgeNotificationsCommandHandler(
		commands.NewNotificationUoWFactory(memstore.NewUnitOfWorkFactory(store)))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	job := jobs.NewNotificationCleanupJob(handler, "0 0 * * * *", 24*time.Hour, logger)
	job.Run(ctx)

	remaining, err := store.Notifications().GetByAgent(ctx, agedOut.AgentID())
	require.NoError(t, err)
	assert.Empty(t, remaining)

	survivors, err := store.Notifications().GetByAgent(ctx, agedOutUnread.AgentID())
	require.NoError(t, err)
	require.Len(t, survivors, 1)
	assert.True(t, survivors[0].IsEqual(agedOutUnread))

	kept, err := store.Notifications().GetByAgent(ctx, recent.AgentID())
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.True(t, kept[0].IsEqual(recent))
}
