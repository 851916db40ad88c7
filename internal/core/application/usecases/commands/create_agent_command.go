package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateAgentCommandIsNotConstructed = errors.New(
		"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
	)
	ErrAgentNameIsRequired = errors.New("agent name is required")
)

// CreateAgentCommand represents a request to register a delivery agent.
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	name    string
	phone   string
	zoneIDs []location.ID

	guard guard.ConstructorGuard
}

// NewCreateAgentCommand creates a command to register an agent covering the
// given zones. The agent identifier is generated here.
func NewCreateAgentCommand(name, phone string, zoneIDs []location.ID) (CreateAgentCommand, error) {
	if name == "" {
		return CreateAgentCommand{}, ErrAgentNameIsRequired
	}
	for _, id := range zoneIDs {
		if err := id.Validate(); err != nil {
			return CreateAgentCommand{}, err
		}
	}

	return CreateAgentCommand{
		agentID: kernel.NewUUID(),
		name:    name,
		phone:   phone,
		zoneIDs: zoneIDs,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

// AgentID returns the generated agent identifier.
func (c CreateAgentCommand) AgentID() kernel.UUID { return c.agentID }

// Name returns the agent's display name.
func (c CreateAgentCommand) Name() string { return c.name }

// Phone returns the contact phone number, possibly empty.
func (c CreateAgentCommand) Phone() string { return c.phone }

// ZoneIDs returns the covered zone slugs.
func (c CreateAgentCommand) ZoneIDs() []location.ID { return c.zoneIDs }
