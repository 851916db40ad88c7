package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/metrics"
)

// AssignAgentCommandHandler hands orders to delivery agents.
// The dispatcher updates both aggregates and produces the assignment
// notification; the handler persists all three together.
type AssignAgentCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.DeliveryDispatcher
}

// NewAssignAgentCommandHandler creates a handler for agent assignment.
func NewAssignAgentCommandHandler(uowFactory DispatchUoWFactory) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDeliveryDispatcher(),
	}
}

// Handle processes the assignment command.
// Returns agent.ErrAgentUnavailable when the agent cannot take the order and
// order.ErrOrderAlreadyAssigned when the order is already carried.
func (h *AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
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

	orderRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	assignee, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	notif, err := h.dispatcher.Dispatch(aggregate, assignee)
	if err != nil {
		if errors.Is(err, agent.ErrAgentUnavailable) || errors.Is(err, order.ErrOrderAlreadyAssigned) {
			metrics.AgentAssignments.WithLabelValues("rejected").Inc()
		}
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = agentRepo.Update(ctx, assignee); err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, notif); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.AgentAssignments.WithLabelValues("assigned").Inc()
	return nil
}
