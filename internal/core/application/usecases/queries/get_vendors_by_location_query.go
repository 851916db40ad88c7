package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrGetVendorsByLocationQueryIsNotConstructed = errors.New(
	"GetVendorsByLocationQuery must be created via NewGetVendorsByLocationQuery constructor",
)

// GetVendorsByLocationQuery retrieves the vendors serving a location.
type GetVendorsByLocationQuery struct {
	locationID location.ID

	guard guard.ConstructorGuard
}

// NewGetVendorsByLocationQuery creates a query for vendors serving locationID.
func NewGetVendorsByLocationQuery(locationID location.ID) (GetVendorsByLocationQuery, error) {
	if err := locationID.Validate(); err != nil {
		return GetVendorsByLocationQuery{}, err
	}

	return GetVendorsByLocationQuery{
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorsByLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorsByLocationQueryIsNotConstructed)
}

// LocationID returns the location being filtered on.
func (q GetVendorsByLocationQuery) LocationID() location.ID {
	return q.locationID
}

// GetVendorsByLocationQueryHandler lists vendors serving a location.
type GetVendorsByLocationQueryHandler struct {
	vendors ports.VendorRepository
}

// NewGetVendorsByLocationQueryHandler creates a handler for the location filter.
func NewGetVendorsByLocationQueryHandler(vendors ports.VendorRepository) GetVendorsByLocationQueryHandler {
	return GetVendorsByLocationQueryHandler{vendors: vendors}
}

// Handle executes the query.
func (h GetVendorsByLocationQueryHandler) Handle(
	ctx context.Context,
	query GetVendorsByLocationQuery,
) ([]VendorResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vendors, err := h.vendors.GetByLocation(ctx, query.LocationID())
	if err != nil {
		return nil, err
	}

	responses := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		responses = append(responses, vendorResponseFromDomain(v))
	}
	return responses, nil
}
