// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for the location hierarchy.
type LocationRepository interface {
	// Add persists a new location node.
	// The location must be valid and its identifier must not already exist.
	Add(ctx context.Context, aggregate *location.Location) error

	// Update persists changes to an existing location node.
	Update(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a location by its slug identifier.
	Get(ctx context.Context, id location.ID) (*location.Location, error)

	// GetAll retrieves every location node. Hierarchy walks (path, children,
	// stat rollups) index the full set in memory.
	GetAll(ctx context.Context) ([]*location.Location, error)
}
