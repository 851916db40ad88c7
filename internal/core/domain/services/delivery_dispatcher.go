package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
)

// DeliveryDispatcher is a domain service responsible for handing an order to
// a delivery agent.
//
// Business rules:
//   - The order must be valid and not yet carried by another agent
//   - The agent must be valid and in the available status
//   - Assignment is atomic: the agent starts the delivery, the order records
//     the agent, and an assignment notification is produced together
type DeliveryDispatcher struct{}

// NewDeliveryDispatcher creates a new DeliveryDispatcher instance.
func NewDeliveryDispatcher() DeliveryDispatcher {
	return DeliveryDispatcher{}
}

// Dispatch assigns the order to the agent and returns the assignment
// notification for the agent's feed.
//
// Returns order.ErrOrderAlreadyAssigned when the order is already carried and
// agent.ErrAgentUnavailable when the agent cannot take the order.
func (d DeliveryDispatcher) Dispatch(o *order.Order, a *agent.Agent) (*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if carrier := o.DeliveryAgentID(); carrier != nil {
		return nil, fmt.Errorf("%w: order %s is carried by agent %s",
			order.ErrOrderAlreadyAssigned, o.ID(), carrier)
	}

	if err := a.StartDelivery(o.ID()); err != nil {
		return nil, err
	}

	if err := o.AssignAgent(a.ID()); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("New delivery assigned: order %s to %s", o.ID(), o.DeliveryAddress())
	return notification.NewNotification(a.ID(), o.ID(), notification.TypeAssignment, message)
}
