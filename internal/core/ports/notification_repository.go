package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for agent
// notifications.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification (read flag).
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetByAgent retrieves an agent's notifications, newest first.
	GetByAgent(ctx context.Context, agentID kernel.UUID) ([]*notification.Notification, error)

	// DeletePurgeable removes read notifications older than the cutoff and
	// reports how many were removed.
	DeletePurgeable(ctx context.Context, olderThan time.Time) (int, error)
}
