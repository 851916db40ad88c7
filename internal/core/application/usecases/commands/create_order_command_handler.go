package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// New orders start in the "new" status with a seed ledger entry.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// The vendor and delivery location must both exist.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := uow.VendorRepository().Get(ctx, cmd.VendorID()); err != nil {
		return err
	}
	if _, err := uow.LocationRepository().Get(ctx, cmd.LocationID()); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.CustomerName(),
		cmd.VendorID(),
		cmd.LocationID(),
		cmd.LineItems(),
		cmd.PaymentMethod(),
		cmd.DeliveryAddress(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
