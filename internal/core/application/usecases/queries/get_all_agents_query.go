package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrGetAllAgentsQueryIsNotConstructed = errors.New(
	"GetAllAgentsQuery must be created via NewGetAllAgentsQuery constructor",
)

// GetAllAgentsQuery retrieves every registered delivery agent.
type GetAllAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAgentsQuery creates a parameterless agent listing query.
func NewGetAllAgentsQuery() GetAllAgentsQuery {
	return GetAllAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAgentsQueryIsNotConstructed)
}

// GetAllAgentsQueryHandler lists the agent roster.
type GetAllAgentsQueryHandler struct {
	agents ports.AgentRepository
}

// NewGetAllAgentsQueryHandler creates a handler for agent listings.
func NewGetAllAgentsQueryHandler(agents ports.AgentRepository) GetAllAgentsQueryHandler {
	return GetAllAgentsQueryHandler{agents: agents}
}

// Handle executes the query.
func (h GetAllAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAgentsQuery,
) ([]AgentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents, err := h.agents.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		responses = append(responses, agentResponseFromDomain(a))
	}
	return responses, nil
}
