package commands

import (
	"context"
	"fmt"
)

// DeleteVendorCommandHandler handles vendor removal.
// A vendor with orders still in flight cannot be removed; the caller must
// wait until those orders reach a terminal status.
type DeleteVendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewDeleteVendorCommandHandler creates a handler for vendor deletion.
func NewDeleteVendorCommandHandler(uowFactory VendorUoWFactory) DeleteVendorCommandHandler {
	return DeleteVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor deletion command.
// Returns ErrVendorHasOpenOrders when non-terminal orders reference the vendor.
func (h *DeleteVendorCommandHandler) Handle(ctx context.Context, cmd DeleteVendorCommand) error {
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

	vendorRepo := uow.VendorRepository()
	if _, err := vendorRepo.Get(ctx, cmd.VendorID()); err != nil {
		return err
	}

	openOrders, err := uow.OrderRepository().CountOpenByVendor(ctx, cmd.VendorID())
	if err != nil {
		return err
	}
	if openOrders > 0 {
		return fmt.Errorf("%w: %d orders in flight", ErrVendorHasOpenOrders, openOrders)
	}

	if err = vendorRepo.Delete(ctx, cmd.VendorID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
