package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/metrics"
	"marketplace/internal/pkg/errs"
)

// agentCommissionRate is the share of the order total credited to the agent
// when the delivery completes.
const agentCommissionRate = 0.10

// ErrOrderNotAssignedToAgent is returned when the reporting agent is not the
// one carrying the order.
var ErrOrderNotAssignedToAgent = errors.New("order is not assigned to this agent")

// UpdateDeliveryStatusCommandHandler progresses an order along its delivery
// leg. Completing a delivery pays the agent a commission and rolls the
// delivery into the agent's per-day performance row.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// progress reports.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery progress command.
// The order must be assigned to the reporting agent. Transition legality is
// enforced by the order aggregate.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assignedTo := aggregate.DeliveryAgentID()
	if assignedTo == nil || !assignedTo.IsEqual(cmd.AgentID()) {
		return ErrOrderNotAssignedToAgent
	}

	from := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Status(), cmd.AgentID().String(), ""); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Status() == order.StatusDelivered {
		if err = h.completeDelivery(ctx, uow, cmd, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrderTransitions.WithLabelValues(string(from), string(cmd.Status())).Inc()
	if cmd.Status() == order.StatusDelivered {
		metrics.DeliveriesCompleted.Inc()
	}
	return nil
}

// completeDelivery credits the agent and upserts the per-day performance row.
func (h *UpdateDeliveryStatusCommandHandler) completeDelivery(
	ctx context.Context,
	uow DeliveryUoW,
	cmd UpdateDeliveryStatusCommand,
	aggregate *order.Order,
) error {
	agentRepo := uow.AgentRepository()
	assignee, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	commission := aggregate.TotalAmount() * agentCommissionRate
	if err = assignee.FinishDelivery(commission); err != nil {
		return err
	}
	if err = agentRepo.Update(ctx, assignee); err != nil {
		return err
	}

	performanceRepo := uow.PerformanceRepository()
	today := agent.Day(time.Now())

	record, err := performanceRepo.GetByAgentDay(ctx, cmd.AgentID(), today)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		if record, err = agent.NewPerformanceRecord(cmd.AgentID(), today); err != nil {
			return err
		}
	}

	if err = record.RecordDelivery(commission); err != nil {
		return err
	}
	if err = performanceRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("save performance record: %w", err)
	}

	return nil
}
