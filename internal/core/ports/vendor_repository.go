package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendor aggregates.
type VendorRepository interface {
	// Add persists a new vendor aggregate.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Update persists changes to an existing vendor aggregate.
	Update(ctx context.Context, aggregate *vendor.Vendor) error

	// Delete removes a vendor by identifier.
	// The open-order guard is enforced by the command layer before calling.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a vendor by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	// GetAll retrieves every registered vendor.
	GetAll(ctx context.Context) ([]*vendor.Vendor, error)

	// GetByLocation retrieves vendors serving the given location.
	GetByLocation(ctx context.Context, id location.ID) ([]*vendor.Vendor, error)
}
