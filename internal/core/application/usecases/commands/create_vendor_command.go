package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateVendorCommandIsNotConstructed = errors.New(
		"CreateVendorCommand must be created via NewCreateVendorCommand constructor",
	)
	ErrVendorNameIsRequired     = errors.New("vendor name is required")
	ErrVendorLocationsAreNeeded = errors.New("vendor must serve at least one location")
)

// CreateVendorCommand represents a request to register a new vendor.
// The vendor identifier is generated here, mirroring how order identifiers
// are minted at the edge rather than inside the handler.
type CreateVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID       kernel.UUID
	name           string
	locationIDs    []location.ID
	commissionRate float64
	contact        vendor.Contact

	guard guard.ConstructorGuard
}

// NewCreateVendorCommand creates a command to register a vendor.
// Validates that the name is present and at least one served location is given.
func NewCreateVendorCommand(
	name string,
	locationIDs []location.ID,
	commissionRate float64,
	contact vendor.Contact,
) (CreateVendorCommand, error) {
	cmd := CreateVendorCommand{
		vendorID: kernel.NewUUID(),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setLocationIDs(locationIDs),
	); err != nil {
		return CreateVendorCommand{}, err
	}

	cmd.commissionRate = commissionRate
	cmd.contact = contact
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVendorCommand) Validate() error {
	return c.guard.Validate(ErrCreateVendorCommandIsNotConstructed)
}

// VendorID returns the generated vendor identifier.
func (c CreateVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the vendor display name.
func (c CreateVendorCommand) Name() string {
	return c.name
}

// LocationIDs returns the served location slugs.
func (c CreateVendorCommand) LocationIDs() []location.ID {
	return c.locationIDs
}

// CommissionRate returns the commission percentage.
func (c CreateVendorCommand) CommissionRate() float64 {
	return c.commissionRate
}

// Contact returns the vendor contact card.
func (c CreateVendorCommand) Contact() vendor.Contact {
	return c.contact
}

func (c *CreateVendorCommand) setName(name string) error {
	if name == "" {
		return ErrVendorNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateVendorCommand) setLocationIDs(locationIDs []location.ID) error {
	if len(locationIDs) == 0 {
		return ErrVendorLocationsAreNeeded
	}
	for _, id := range locationIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.locationIDs = locationIDs
	return nil
}
