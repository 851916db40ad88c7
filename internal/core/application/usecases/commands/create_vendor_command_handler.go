package commands

import (
	"context"

	"marketplace/internal/core/domain/model/vendor"
)

// CreateVendorCommandHandler handles the business logic for vendor registration.
// Every served location is checked against the hierarchy before the vendor is stored.
type CreateVendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewCreateVendorCommandHandler creates a handler for vendor registration.
func NewCreateVendorCommandHandler(uowFactory VendorUoWFactory) CreateVendorCommandHandler {
	return CreateVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor creation command.
func (h *CreateVendorCommandHandler) Handle(ctx context.Context, cmd CreateVendorCommand) error {
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

	locationRepo := uow.LocationRepository()
	for _, locationID := range cmd.LocationIDs() {
		if _, err := locationRepo.Get(ctx, locationID); err != nil {
			return err
		}
	}

	aggregate, err := vendor.NewVendor(
		cmd.VendorID(), cmd.Name(), cmd.LocationIDs(), cmd.CommissionRate(), cmd.Contact())
	if err != nil {
		return err
	}

	if err = uow.VendorRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
