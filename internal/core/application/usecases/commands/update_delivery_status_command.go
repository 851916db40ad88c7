package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
		"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
	)

	// ErrStatusIsNotDeliveryStage is returned for statuses outside the
	// delivery leg of the order lifecycle.
	ErrStatusIsNotDeliveryStage = errors.New(
		"status must be one of ready_to_ship, out_for_delivery, delivered")
)

// UpdateDeliveryStatusCommand represents a delivery-leg progress report from
// the agent carrying the order.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command for a delivery progress
// report. Only the delivery-leg statuses are accepted here; other moves go
// through NewTransitionOrderStatusCommand.
func NewUpdateDeliveryStatusCommand(
	orderID kernel.UUID,
	agentID kernel.UUID,
	status order.Status,
) (UpdateDeliveryStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		agentID.Validate(),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	switch status {
	case order.StatusReadyToShip, order.StatusOutForDelivery, order.StatusDelivered:
	default:
		return UpdateDeliveryStatusCommand{}, ErrStatusIsNotDeliveryStage
	}

	return UpdateDeliveryStatusCommand{
		orderID: orderID,
		agentID: agentID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// OrderID returns the order being progressed.
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID { return c.orderID }

// AgentID returns the reporting agent.
func (c UpdateDeliveryStatusCommand) AgentID() kernel.UUID { return c.agentID }

// Status returns the reported delivery-leg status.
func (c UpdateDeliveryStatusCommand) Status() order.Status { return c.status }
