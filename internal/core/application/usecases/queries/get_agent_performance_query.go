package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrGetAgentPerformanceQueryIsNotConstructed = errors.New(
	"GetAgentPerformanceQuery must be created via NewGetAgentPerformanceQuery constructor",
)

// GetAgentPerformanceQuery retrieves an agent's per-day performance rows.
type GetAgentPerformanceQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentPerformanceQuery creates a query for the agent's history.
func NewGetAgentPerformanceQuery(agentID kernel.UUID) (GetAgentPerformanceQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentPerformanceQuery{}, err
	}

	return GetAgentPerformanceQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentPerformanceQueryIsNotConstructed)
}

// AgentID returns the agent whose history is requested.
func (q GetAgentPerformanceQuery) AgentID() kernel.UUID {
	return q.agentID
}

// GetAgentPerformanceQueryHandler fetches per-day performance history.
type GetAgentPerformanceQueryHandler struct {
	agents      ports.AgentRepository
	performance ports.PerformanceRepository
}

// NewGetAgentPerformanceQueryHandler creates a handler for performance reads.
func NewGetAgentPerformanceQueryHandler(
	agents ports.AgentRepository,
	performance ports.PerformanceRepository,
) GetAgentPerformanceQueryHandler {
	return GetAgentPerformanceQueryHandler{agents: agents, performance: performance}
}

// Handle executes the query. The agent must exist; an agent with no
// deliveries yet yields an empty history.
func (h GetAgentPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetAgentPerformanceQuery,
) ([]PerformanceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.agents.Get(ctx, query.AgentID()); err != nil {
		return nil, err
	}

	records, err := h.performance.GetByAgent(ctx, query.AgentID())
	if err != nil {
		return nil, err
	}

	responses := make([]PerformanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, performanceResponseFromDomain(record))
	}
	return responses, nil
}
