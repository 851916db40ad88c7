package commands

import (
	"context"
)

// PurgeNotificationsCommandHandler drops read notifications older than the
// cutoff. Unread notifications survive regardless of age.
type PurgeNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewPurgeNotificationsCommandHandler creates a handler for notification cleanup.
func NewPurgeNotificationsCommandHandler(uowFactory NotificationUoWFactory) PurgeNotificationsCommandHandler {
	return PurgeNotificationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and reports how many rows were dropped.
func (h *PurgeNotificationsCommandHandler) Handle(ctx context.Context, cmd PurgeNotificationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.NotificationRepository().DeletePurgeable(ctx, cmd.OlderThan())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
