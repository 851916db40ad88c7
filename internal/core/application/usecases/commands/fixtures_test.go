package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/vendor"
)

func fixtureLocation(t *testing.T, id location.ID, locType location.Type, parentID *location.ID) *location.Location {
	t.Helper()

	l, err := location.NewLocation(id, string(id), locType, parentID, nil)
	require.NoError(t, err)
	return l
}

func fixtureVendor(t *testing.T, locationIDs ...location.ID) *vendor.Vendor {
	t.Helper()

	v, err := vendor.NewVendor(kernel.NewUUID(), "Green Basket Grocers", locationIDs, 12, vendor.Contact{
		Email: "hello@greenbasket.example",
	})
	require.NoError(t, err)
	return v
}

func fixtureOrder(t *testing.T, vendorID kernel.UUID, locationID location.ID) *order.Order {
	t.Helper()

	item, err := order.NewLineItem("p-101", "Sourdough Loaf", 6.50, 2)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Maria Gomez",
		vendorID, locationID, []order.LineItem{item}, "card", "500 Valencia St")
	require.NoError(t, err)
	return o
}

func fixtureAgent(t *testing.T, zoneIDs ...location.ID) *agent.Agent {
	t.Helper()

	a, err := agent.NewAgent(kernel.NewUUID(), "Carlos Mendez", "+1-415-555-0101", zoneIDs)
	require.NoError(t, err)
	return a
}
