package commands

import (
	"context"

	"marketplace/internal/metrics"
)

// TransitionOrderStatusCommandHandler moves orders along the status ledger.
// The aggregate rejects illegal moves with order.ErrInvalidTransition; the
// handler persists the new ledger entry atomically with the status change.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderStatusCommandHandler creates a handler for status transitions.
func NewTransitionOrderStatusCommandHandler(uowFactory OrderUoWFactory) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
func (h *TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) error {
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

	from := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.NewStatus(), cmd.UpdatedBy(), cmd.Note()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrderTransitions.WithLabelValues(string(from), string(cmd.NewStatus())).Inc()
	return nil
}
