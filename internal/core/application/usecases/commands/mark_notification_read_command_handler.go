package commands

import (
	"context"
)

// MarkNotificationReadCommandHandler flags feed entries as seen. Read
// notifications become eligible for the retention purge.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for marking
// notifications read.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-read command. Marking an already read
// notification is a no-op.
func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()

	aggregate, err := notificationRepo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if aggregate.Read() {
		return uow.Commit(ctx)
	}

	aggregate.MarkRead()
	if err = notificationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
