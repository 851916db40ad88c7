package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrGetAllVendorsQueryIsNotConstructed = errors.New(
	"GetAllVendorsQuery must be created via NewGetAllVendorsQuery constructor",
)

// GetAllVendorsQuery retrieves every registered vendor.
type GetAllVendorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVendorsQuery creates a parameterless vendor listing query.
func NewGetAllVendorsQuery() GetAllVendorsQuery {
	return GetAllVendorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVendorsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVendorsQueryIsNotConstructed)
}

// GetAllVendorsQueryHandler lists the vendor registry.
type GetAllVendorsQueryHandler struct {
	vendors ports.VendorRepository
}

// NewGetAllVendorsQueryHandler creates a handler for vendor listings.
func NewGetAllVendorsQueryHandler(vendors ports.VendorRepository) GetAllVendorsQueryHandler {
	return GetAllVendorsQueryHandler{vendors: vendors}
}

// Handle executes the query.
func (h GetAllVendorsQueryHandler) Handle(
	ctx context.Context,
	query GetAllVendorsQuery,
) ([]VendorResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vendors, err := h.vendors.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		responses = append(responses, vendorResponseFromDomain(v))
	}
	return responses, nil
}
