package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrGetLocationStatsQueryIsNotConstructed = errors.New(
	"GetLocationStatsQuery must be created via NewGetLocationStatsQuery constructor",
)

// GetLocationStatsQuery retrieves aggregate figures over the whole hierarchy.
type GetLocationStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLocationStatsQuery creates a parameterless stats query.
func NewGetLocationStatsQuery() GetLocationStatsQuery {
	return GetLocationStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLocationStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationStatsQueryIsNotConstructed)
}

// GetLocationStatsQueryResponse is the hierarchy-wide aggregation read model.
type GetLocationStatsQueryResponse struct {
	TotalLocations int
	CountByType    map[location.Type]int
	TopByRevenue   []LocationResponse
}

// GetLocationStatsQueryHandler aggregates hierarchy figures.
type GetLocationStatsQueryHandler struct {
	locations ports.LocationRepository
}

// NewGetLocationStatsQueryHandler creates a handler for stats queries.
func NewGetLocationStatsQueryHandler(locations ports.LocationRepository) GetLocationStatsQueryHandler {
	return GetLocationStatsQueryHandler{locations: locations}
}

// Handle executes the query: total node count, count per type, and the top
// five locations by revenue.
func (h GetLocationStatsQueryHandler) Handle(
	ctx context.Context,
	query GetLocationStatsQuery,
) (GetLocationStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLocationStatsQueryResponse{}, err
	}

	all, err := h.locations.GetAll(ctx)
	if err != nil {
		return GetLocationStatsQueryResponse{}, err
	}

	stats := location.ComputeStats(all)
	top := make([]LocationResponse, 0, len(stats.TopByRevenue))
	for _, node := range stats.TopByRevenue {
		top = append(top, locationResponseFromDomain(node))
	}

	return GetLocationStatsQueryResponse{
		TotalLocations: stats.TotalLocations,
		CountByType:    stats.CountByType,
		TopByRevenue:   top,
	}, nil
}
