package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/guard"
)

var (
	ErrPurgeNotificationsCommandIsNotConstructed = errors.New(
		"PurgeNotificationsCommand must be created via NewPurgeNotificationsCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff time is required")
)

// PurgeNotificationsCommand represents a request to drop read notifications
// older than the cutoff.
type PurgeNotificationsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Time

	guard guard.ConstructorGuard
}

// NewPurgeNotificationsCommand creates a command to purge read notifications
// with a timestamp before olderThan.
func NewPurgeNotificationsCommand(olderThan time.Time) (PurgeNotificationsCommand, error) {
	if olderThan.IsZero() {
		return PurgeNotificationsCommand{}, ErrCutoffIsRequired
	}

	return PurgeNotificationsCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeNotificationsCommandIsNotConstructed)
}

// OlderThan returns the purge cutoff.
func (c PurgeNotificationsCommand) OlderThan() time.Time {
	return c.olderThan
}
