package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteAgentCommandIsNotConstructed = errors.New(
	"DeleteAgentCommand must be created via NewDeleteAgentCommand constructor",
)

// DeleteAgentCommand represents a request to remove a delivery agent.
type DeleteAgentCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAgentCommand creates a command to delete the given agent.
func NewDeleteAgentCommand(agentID kernel.UUID) (DeleteAgentCommand, error) {
	if err := agentID.Validate(); err != nil {
		return DeleteAgentCommand{}, err
	}

	return DeleteAgentCommand{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAgentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAgentCommandIsNotConstructed)
}

// AgentID returns the agent to delete.
func (c DeleteAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}
