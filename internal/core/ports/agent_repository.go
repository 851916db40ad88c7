package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agents.
type AgentRepository interface {
	// Add persists a new agent aggregate.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent aggregate.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Delete removes an agent by identifier.
	// The on-delivery guard is enforced by the command layer before calling.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an agent by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetAll retrieves every registered agent.
	GetAll(ctx context.Context) ([]*agent.Agent, error)
}

// PerformanceRepository defines the persistence contract for per-day agent
// performance rows.
type PerformanceRepository interface {
	// Save upserts a performance row keyed by agent and day.
	Save(ctx context.Context, record *agent.PerformanceRecord) error

	// GetByAgentDay retrieves the row for one agent and calendar day.
	// Returns an ObjectNotFoundError when no row exists yet.
	GetByAgentDay(ctx context.Context, agentID kernel.UUID, day time.Time) (*agent.PerformanceRecord, error)

	// GetByAgent retrieves all rows for an agent, most recent day first.
	GetByAgent(ctx context.Context, agentID kernel.UUID) ([]*agent.PerformanceRecord, error)
}
