package commands

import (
	"context"

	"marketplace/internal/core/domain/model/agent"
)

// CreateAgentCommandHandler handles the business logic for agent registration.
// New agents start available with an empty delivery history.
type CreateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewCreateAgentCommandHandler creates a handler for agent registration.
func NewCreateAgentCommandHandler(uowFactory AgentUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent creation command.
func (h *CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) error {
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

	aggregate, err := agent.NewAgent(cmd.AgentID(), cmd.Name(), cmd.Phone(), cmd.ZoneIDs())
	if err != nil {
		return err
	}

	if err = uow.AgentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
