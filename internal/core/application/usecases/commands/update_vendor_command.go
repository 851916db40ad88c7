package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateVendorCommandIsNotConstructed = errors.New(
	"UpdateVendorCommand must be created via NewUpdateVendorCommand constructor",
)

// UpdateVendorCommand represents a partial update of a vendor's profile.
// Nil fields keep their current values.
type UpdateVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID       kernel.UUID
	name           *string
	locationIDs    []location.ID
	rating         *float64
	commissionRate *float64
	active         *bool
	verified       *bool
	contact        *vendor.Contact

	guard guard.ConstructorGuard
}

// NewUpdateVendorCommand creates a command to update the given vendor.
// Each non-nil field replaces the stored value; nil fields are left alone.
func NewUpdateVendorCommand(
	vendorID kernel.UUID,
	name *string,
	locationIDs []location.ID,
	rating *float64,
	commissionRate *float64,
	active *bool,
	verified *bool,
	contact *vendor.Contact,
) (UpdateVendorCommand, error) {
	if err := vendorID.Validate(); err != nil {
		return UpdateVendorCommand{}, err
	}
	if name != nil && *name == "" {
		return UpdateVendorCommand{}, ErrVendorNameIsRequired
	}
	for _, id := range locationIDs {
		if err := id.Validate(); err != nil {
			return UpdateVendorCommand{}, err
		}
	}

	return UpdateVendorCommand{
		vendorID:       vendorID,
		name:           name,
		locationIDs:    locationIDs,
		rating:         rating,
		commissionRate: commissionRate,
		active:         active,
		verified:       verified,
		contact:        contact,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVendorCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVendorCommandIsNotConstructed)
}

// VendorID returns the vendor to update.
func (c UpdateVendorCommand) VendorID() kernel.UUID { return c.vendorID }

// Name returns the replacement name, or nil.
func (c UpdateVendorCommand) Name() *string { return c.name }

// LocationIDs returns the replacement served locations, or nil.
func (c UpdateVendorCommand) LocationIDs() []location.ID { return c.locationIDs }

// Rating returns the replacement rating, or nil.
func (c UpdateVendorCommand) Rating() *float64 { return c.rating }

// CommissionRate returns the replacement commission rate, or nil.
func (c UpdateVendorCommand) CommissionRate() *float64 { return c.commissionRate }

// Active returns the replacement active flag, or nil.
func (c UpdateVendorCommand) Active() *bool { return c.active }

// Verified returns the replacement verified flag, or nil.
func (c UpdateVendorCommand) Verified() *bool { return c.verified }

// Contact returns the replacement contact card, or nil.
func (c UpdateVendorCommand) Contact() *vendor.Contact { return c.contact }
