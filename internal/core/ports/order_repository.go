package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/order"
)

// OrderFilter narrows order listings. Nil fields match everything.
type OrderFilter struct {
	Status     *order.Status
	VendorID   *kernel.UUID
	LocationID *location.ID
}

// OrderRepository defines the persistence contract for order aggregates,
// including their status history ledger.
type OrderRepository interface {
	// Add persists a new order aggregate with its seed history entry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// New status history entries are appended, existing ones never change.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier, history included.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves orders matching the filter, newest first.
	GetAll(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// CountOpenByVendor counts the vendor's orders in a non-terminal status.
	// Used to block vendor deletion while orders are still in flight.
	CountOpenByVendor(ctx context.Context, vendorID kernel.UUID) (int, error)
}
