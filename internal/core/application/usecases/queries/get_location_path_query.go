package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrGetLocationPathQueryIsNotConstructed = errors.New(
	"GetLocationPathQuery must be created via NewGetLocationPathQuery constructor",
)

// GetLocationPathQuery retrieves the root-to-node breadcrumb for a location.
type GetLocationPathQuery struct {
	locationID location.ID

	guard guard.ConstructorGuard
}

// NewGetLocationPathQuery creates a query for the given location's path.
func NewGetLocationPathQuery(locationID location.ID) (GetLocationPathQuery, error) {
	if err := locationID.Validate(); err != nil {
		return GetLocationPathQuery{}, err
	}

	return GetLocationPathQuery{
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLocationPathQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationPathQueryIsNotConstructed)
}

// LocationID returns the node whose path is requested.
func (q GetLocationPathQuery) LocationID() location.ID {
	return q.locationID
}

// GetLocationPathQueryHandler resolves breadcrumbs over the full hierarchy.
type GetLocationPathQueryHandler struct {
	locations ports.LocationRepository
}

// NewGetLocationPathQueryHandler creates a handler for path queries.
func NewGetLocationPathQueryHandler(locations ports.LocationRepository) GetLocationPathQueryHandler {
	return GetLocationPathQueryHandler{locations: locations}
}

// Handle executes the query. The path runs root first and ends at the
// requested node; a cycle in the stored hierarchy surfaces as
// location.ErrHierarchyCycle.
func (h GetLocationPathQueryHandler) Handle(
	ctx context.Context,
	query GetLocationPathQuery,
) ([]LocationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.locations.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	path, err := location.BuildPath(location.Index(all), query.LocationID())
	if err != nil {
		return nil, err
	}

	responses := make([]LocationResponse, 0, len(path))
	for _, node := range path {
		responses = append(responses, locationResponseFromDomain(node))
	}
	return responses, nil
}
