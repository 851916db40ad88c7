package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand represents a request to flag a notification as
// seen by its agent.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark the given
// notification as read.
func NewMarkNotificationReadCommand(notificationID kernel.UUID) (MarkNotificationReadCommand, error) {
	if err := notificationID.Validate(); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return MarkNotificationReadCommand{
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the notification to mark as read.
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}
