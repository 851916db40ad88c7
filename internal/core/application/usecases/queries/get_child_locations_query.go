package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrGetChildLocationsQueryIsNotConstructed = errors.New(
	"GetChildLocationsQuery must be created via NewGetChildLocationsQuery constructor",
)

// GetChildLocationsQuery retrieves the direct children of a hierarchy node.
// A nil parent selects the root nodes.
type GetChildLocationsQuery struct {
	parentID *location.ID

	guard guard.ConstructorGuard
}

// NewGetChildLocationsQuery creates a query for the children of parentID,
// or for the roots when parentID is nil.
func NewGetChildLocationsQuery(parentID *location.ID) (GetChildLocationsQuery, error) {
	if parentID != nil {
		if err := parentID.Validate(); err != nil {
			return GetChildLocationsQuery{}, err
		}
	}

	return GetChildLocationsQuery{
		parentID: parentID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetChildLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetChildLocationsQueryIsNotConstructed)
}

// ParentID returns the parent node, or nil for roots.
func (q GetChildLocationsQuery) ParentID() *location.ID {
	return q.parentID
}

// GetChildLocationsQueryHandler lists direct children of a node.
type GetChildLocationsQueryHandler struct {
	locations ports.LocationRepository
}

// NewGetChildLocationsQueryHandler creates a handler for children queries.
func NewGetChildLocationsQueryHandler(locations ports.LocationRepository) GetChildLocationsQueryHandler {
	return GetChildLocationsQueryHandler{locations: locations}
}

// Handle executes the query, preserving the repository's ordering.
func (h GetChildLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetChildLocationsQuery,
) ([]LocationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.locations.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	children := location.Children(all, query.ParentID())
	responses := make([]LocationResponse, 0, len(children))
	for _, child := range children {
		responses = append(responses, locationResponseFromDomain(child))
	}
	return responses, nil
}
