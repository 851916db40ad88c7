package commands

import (
	"context"

	"marketplace/internal/core/domain/model/agent"
)

// DeleteAgentCommandHandler handles agent removal.
// An agent carrying an order cannot be removed until the delivery completes.
type DeleteAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewDeleteAgentCommandHandler creates a handler for agent deletion.
func NewDeleteAgentCommandHandler(uowFactory AgentUoWFactory) DeleteAgentCommandHandler {
	return DeleteAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent deletion command.
// Returns agent.ErrAgentDeleteBlocked while the agent is on a delivery.
func (h *DeleteAgentCommandHandler) Handle(ctx context.Context, cmd DeleteAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()
	aggregate, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if !aggregate.CanBeDeleted() {
		return agent.ErrAgentDeleteBlocked
	}

	if err = agentRepo.Delete(ctx, cmd.AgentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
