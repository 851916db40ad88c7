package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// StatusFilterAll selects every status in an order listing.
const StatusFilterAll = "all"

// GetOrdersQuery retrieves orders, optionally narrowed by status, vendor,
// and location.
type GetOrdersQuery struct {
	status     *order.Status
	vendorID   *kernel.UUID
	locationID *location.ID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query. The status filter accepts
// every ledger status plus "all" (or empty) for no filtering; vendor and
// location filters apply when non-nil.
func NewGetOrdersQuery(
	statusFilter string,
	vendorID *kernel.UUID,
	locationID *location.ID,
) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if statusFilter != "" && statusFilter != StatusFilterAll {
		status := order.Status(statusFilter)
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = &status
	}

	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		id := *vendorID
		q.vendorID = &id
	}

	if locationID != nil {
		if err := locationID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		id := *locationID
		q.locationID = &id
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when all statuses are selected.
func (q GetOrdersQuery) Status() *order.Status { return q.status }

// VendorID returns the vendor filter, or nil.
func (q GetOrdersQuery) VendorID() *kernel.UUID { return q.vendorID }

// LocationID returns the location filter, or nil.
func (q GetOrdersQuery) LocationID() *location.ID { return q.locationID }

// GetOrdersQueryHandler lists orders from the ledger.
type GetOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(orders ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle executes the query, newest orders first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx, ports.OrderFilter{
		Status:     query.Status(),
		VendorID:   query.VendorID(),
		LocationID: query.LocationID(),
	})
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, orderResponseFromDomain(o))
	}
	return responses, nil
}
