package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrGetVendorLocationsQueryIsNotConstructed = errors.New(
	"GetVendorLocationsQuery must be created via NewGetVendorLocationsQuery constructor",
)

// GetVendorLocationsQuery retrieves the location nodes a vendor serves.
type GetVendorLocationsQuery struct {
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorLocationsQuery creates a query for the vendor's served locations.
func NewGetVendorLocationsQuery(vendorID kernel.UUID) (GetVendorLocationsQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorLocationsQuery{}, err
	}

	return GetVendorLocationsQuery{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorLocationsQueryIsNotConstructed)
}

// VendorID returns the vendor whose locations are requested.
func (q GetVendorLocationsQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// GetVendorLocationsQueryHandler resolves a vendor's served location nodes.
type GetVendorLocationsQueryHandler struct {
	vendors   ports.VendorRepository
	locations ports.LocationRepository
}

// NewGetVendorLocationsQueryHandler creates a handler for served-location queries.
func NewGetVendorLocationsQueryHandler(
	vendors ports.VendorRepository,
	locations ports.LocationRepository,
) GetVendorLocationsQueryHandler {
	return GetVendorLocationsQueryHandler{vendors: vendors, locations: locations}
}

// Handle executes the query. Served slugs that no longer resolve to a
// hierarchy node are skipped rather than failing the whole read.
func (h GetVendorLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetVendorLocationsQuery,
) ([]LocationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	v, err := h.vendors.Get(ctx, query.VendorID())
	if err != nil {
		return nil, err
	}

	responses := make([]LocationResponse, 0, len(v.LocationIDs()))
	for _, locationID := range v.LocationIDs() {
		node, getErr := h.locations.Get(ctx, locationID)
		if getErr != nil {
			continue
		}
		responses = append(responses, locationResponseFromDomain(node))
	}
	return responses, nil
}
