package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
		"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
	)
	ErrUpdatedByIsRequired = errors.New("updatedBy is required")
)

// TransitionOrderStatusCommand represents a request to move an order along
// its status ledger. Legality of the move is decided by the order aggregate.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	updatedBy string
	note      string

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand creates a command to transition an order.
// The actor performing the change is recorded in the ledger entry; the note
// is optional.
func NewTransitionOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	updatedBy string,
	note string,
) (TransitionOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		newStatus.Validate(),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}
	if updatedBy == "" {
		return TransitionOrderStatusCommand{}, ErrUpdatedByIsRequired
	}

	return TransitionOrderStatusCommand{
		orderID:   orderID,
		newStatus: newStatus,
		updatedBy: updatedBy,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// NewStatus returns the requested target status.
func (c TransitionOrderStatusCommand) NewStatus() order.Status { return c.newStatus }

// UpdatedBy returns the actor recorded in the ledger entry.
func (c TransitionOrderStatusCommand) UpdatedBy() string { return c.updatedBy }

// Note returns the optional ledger note.
func (c TransitionOrderStatusCommand) Note() string { return c.note }
