package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand represents a request to hand an order to a specific
// delivery agent.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign the order to the agent.
func NewAssignAgentCommand(orderID, agentID kernel.UUID) (AssignAgentCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		agentID.Validate(),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return AssignAgentCommand{
		orderID: orderID,
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignAgentCommand) OrderID() kernel.UUID { return c.orderID }

// AgentID returns the agent taking the delivery.
func (c AssignAgentCommand) AgentID() kernel.UUID { return c.agentID }
