package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrGetAgentNotificationsQueryIsNotConstructed = errors.New(
	"GetAgentNotificationsQuery must be created via NewGetAgentNotificationsQuery constructor",
)

// GetAgentNotificationsQuery retrieves an agent's feed, newest first.
type GetAgentNotificationsQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentNotificationsQuery creates a query for the agent's feed.
func NewGetAgentNotificationsQuery(agentID kernel.UUID) (GetAgentNotificationsQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentNotificationsQuery{}, err
	}

	return GetAgentNotificationsQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentNotificationsQueryIsNotConstructed)
}

// AgentID returns the agent whose feed is requested.
func (q GetAgentNotificationsQuery) AgentID() kernel.UUID {
	return q.agentID
}

// GetAgentNotificationsQueryHandler fetches an agent's notification feed.
type GetAgentNotificationsQueryHandler struct {
	agents        ports.AgentRepository
	notifications ports.NotificationRepository
}

// NewGetAgentNotificationsQueryHandler creates a handler for feed reads.
func NewGetAgentNotificationsQueryHandler(
	agents ports.AgentRepository,
	notifications ports.NotificationRepository,
) GetAgentNotificationsQueryHandler {
	return GetAgentNotificationsQueryHandler{agents: agents, notifications: notifications}
}

// Handle executes the query. The agent must exist; an agent with no
// assignments yet yields an empty feed.
func (h GetAgentNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.agents.Get(ctx, query.AgentID()); err != nil {
		return nil, err
	}

	feed, err := h.notifications.GetByAgent(ctx, query.AgentID())
	if err != nil {
		return nil, err
	}

	responses := make([]NotificationResponse, 0, len(feed))
	for _, n := range feed {
		responses = append(responses, notificationResponseFromDomain(n))
	}
	return responses, nil
}
