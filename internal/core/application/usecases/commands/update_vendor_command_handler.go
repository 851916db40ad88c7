package commands

import (
	"context"
)

// UpdateVendorCommandHandler handles partial updates of vendor profiles.
type UpdateVendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewUpdateVendorCommandHandler creates a handler for vendor updates.
func NewUpdateVendorCommandHandler(uowFactory VendorUoWFactory) UpdateVendorCommandHandler {
	return UpdateVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor update command. Served locations, when
// replaced, must all exist in the hierarchy.
func (h *UpdateVendorCommandHandler) Handle(ctx context.Context, cmd UpdateVendorCommand) error {
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
	aggregate, err := vendorRepo.Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	if name := cmd.Name(); name != nil {
		if err = aggregate.Rename(*name); err != nil {
			return err
		}
	}
	if locationIDs := cmd.LocationIDs(); locationIDs != nil {
		locationRepo := uow.LocationRepository()
		for _, locationID := range locationIDs {
			if _, err = locationRepo.Get(ctx, locationID); err != nil {
				return err
			}
		}
		if err = aggregate.SetLocations(locationIDs); err != nil {
			return err
		}
	}
	if rating := cmd.Rating(); rating != nil {
		if err = aggregate.SetRating(*rating); err != nil {
			return err
		}
	}
	if rate := cmd.CommissionRate(); rate != nil {
		if err = aggregate.SetCommissionRate(*rate); err != nil {
			return err
		}
	}
	if active := cmd.Active(); active != nil {
		aggregate.SetActive(*active)
	}
	if verified := cmd.Verified(); verified != nil {
		aggregate.SetVerified(*verified)
	}
	if contact := cmd.Contact(); contact != nil {
		aggregate.SetContact(*contact)
	}

	if err = vendorRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
