package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrDeleteVendorCommandIsNotConstructed = errors.New(
		"DeleteVendorCommand must be created via NewDeleteVendorCommand constructor",
	)

	// ErrVendorHasOpenOrders is returned when deletion is attempted while the
	// vendor still has orders in a non-terminal status.
	ErrVendorHasOpenOrders = errors.New("vendor has open orders")
)

// DeleteVendorCommand represents a request to remove a vendor from the registry.
type DeleteVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVendorCommand creates a command to delete the given vendor.
func NewDeleteVendorCommand(vendorID kernel.UUID) (DeleteVendorCommand, error) {
	if err := vendorID.Validate(); err != nil {
		return DeleteVendorCommand{}, err
	}

	return DeleteVendorCommand{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVendorCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVendorCommandIsNotConstructed)
}

// VendorID returns the vendor to delete.
func (c DeleteVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}
