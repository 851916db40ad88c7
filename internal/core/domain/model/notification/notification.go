// Package notification contains the agent notification entity produced when
// an order is assigned to a delivery agent.
package notification

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Type classifies a notification.
type Type string

// TypeAssignment is sent to an agent when an order is assigned to them.
const TypeAssignment Type = "assignment"

// Validate returns an error for types outside the known set.
func (t Type) Validate() error {
	if t != TypeAssignment {
		return errs.NewValueIsInvalidError("notification type")
	}
	return nil
}

// String implements fmt.Stringer.
func (t Type) String() string { return string(t) }

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification")

// Notification is a message delivered to an agent's feed.
type Notification struct {
	id        kernel.UUID
	agentID   kernel.UUID
	orderID   kernel.UUID
	notifType Type
	message   string
	timestamp time.Time
	read      bool

	guard guard.ConstructorGuard
}

// NewNotification creates an unread notification stamped with the current time.
func NewNotification(agentID, orderID kernel.UUID, notifType Type, message string) (*Notification, error) {
	if err := errors.Join(
		agentID.Validate(),
		orderID.Validate(),
		notifType.Validate(),
	); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		id:        kernel.NewUUID(),
		agentID:   agentID,
		orderID:   orderID,
		notifType: notifType,
		message:   message,
		timestamp: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	agentID kernel.UUID,
	orderID kernel.UUID,
	notifType Type,
	message string,
	timestamp time.Time,
	read bool,
) (*Notification, error) {
	if err := errors.Join(
		id.Validate(),
		agentID.Validate(),
		orderID.Validate(),
		notifType.Validate(),
	); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	return &Notification{
		id:        id,
		agentID:   agentID,
		orderID:   orderID,
		notifType: notifType,
		message:   message,
		timestamp: timestamp,
		read:      read,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the notification was built through a constructor.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// IsEqual compares notifications by identifier.
func (n *Notification) IsEqual(other *Notification) bool {
	return other != nil && n.id.IsEqual(other.id)
}

// ID returns the notification identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// AgentID returns the addressee agent.
func (n *Notification) AgentID() kernel.UUID { return n.agentID }

// OrderID returns the order the notification refers to.
func (n *Notification) OrderID() kernel.UUID { return n.orderID }

// Type returns the notification type.
func (n *Notification) Type() Type { return n.notifType }

// Message returns the human readable text.
func (n *Notification) Message() string { return n.message }

// Timestamp returns the creation time.
func (n *Notification) Timestamp() time.Time { return n.timestamp }

// Read reports whether the agent has seen the notification.
func (n *Notification) Read() bool { return n.read }

// MarkRead flags the notification as seen.
func (n *Notification) MarkRead() { n.read = true }

// IsPurgeable reports whether the notification is read and older than the
// cutoff, making it eligible for cleanup.
func (n *Notification) IsPurgeable(olderThan time.Time) bool {
	return n.read && n.timestamp.Before(olderThan)
}
