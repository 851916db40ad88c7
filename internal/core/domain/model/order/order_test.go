package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLineItems(t *testing.T) []order.LineItem {
	t.Helper()
	milk, err := order.NewLineItem("p-milk", "Whole Milk 1L", 2.50, 2)
	require.NoError(t, err)
	bread, err := order.NewLineItem("p-bread", "Sourdough Loaf", 4.25, 1)
	require.NoError(t, err)
	return []order.LineItem{milk, bread}
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Dana Smith", kernel.NewUUID(),
		"us-ca-sf-downtown", testLineItems(t), "card", "1 Market St, San Francisco",
	)
	require.NoError(t, err)
	return o
}

func TestNewLineItem(t *testing.T) {
	t.Run("computes subtotal", func(t *testing.T) {
		item, err := order.NewLineItem("p1", "Eggs (12)", 3.99, 3)
		require.NoError(t, err)
		assert.InDelta(t, 11.97, item.Subtotal(), 1e-9)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewLineItem("p1", "Eggs (12)", 3.99, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := order.NewLineItem("p1", "Eggs (12)", -0.01, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects missing product id", func(t *testing.T) {
		_, err := order.NewLineItem("", "Eggs (12)", 3.99, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("starts in new with seeded history", func(t *testing.T) {
		o := testOrder(t)

		assert.Equal(t, order.StatusNew, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Nil(t, o.DeliveryAgentID())
		assert.InDelta(t, 9.25, o.TotalAmount(), 1e-9)

		history := o.StatusHistory()
		require.Len(t, history, 1)
		assert.Equal(t, order.StatusNew, history[0].Status())
		assert.Equal(t, "system", history[0].UpdatedBy())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects empty line items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Dana Smith", kernel.NewUUID(),
			"us", nil, "card", "somewhere",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Dana Smith", kernel.NewUUID(),
			"us", testLineItems(t), "card", "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("appends history and syncs status", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.TransitionTo(order.StatusConfirmed, "admin", ""))

		assert.Equal(t, order.StatusConfirmed, o.Status())
		history := o.StatusHistory()
		require.Len(t, history, 2)
		last := history[len(history)-1]
		assert.Equal(t, order.StatusConfirmed, last.Status())
		assert.Equal(t, "admin", last.UpdatedBy())
		assert.Empty(t, last.Note())
		assert.False(t, o.UpdatedAt().Before(o.CreatedAt()))
	})

	t.Run("history grows by one per transition and last entry matches status", func(t *testing.T) {
		o := testOrder(t)
		steps := []order.Status{
			order.StatusConfirmed, order.StatusProcessing, order.StatusReadyToShip,
			order.StatusOutForDelivery, order.StatusDelivered,
		}

		for i, next := range steps {
			require.NoError(t, o.TransitionTo(next, "ops", "step"))
			history := o.StatusHistory()
			assert.Len(t, history, i+2)
			assert.Equal(t, o.Status(), history[len(history)-1].Status())
		}
	})

	t.Run("rejects skipping to delivered from new", func(t *testing.T) {
		o := testOrder(t)

		err := o.TransitionTo(order.StatusDelivered, "admin", "")

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusNew, o.Status())
		assert.Len(t, o.StatusHistory(), 1)
	})

	t.Run("terminal statuses accept nothing", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusCancelled, "admin", "out of stock"))

		for _, next := range order.AllStatuses() {
			require.Error(t, o.TransitionTo(next, "admin", ""))
		}
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("requires an actor", func(t *testing.T) {
		o := testOrder(t)
		err := o.TransitionTo(order.StatusConfirmed, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.StatusNew, o.Status())
	})

	t.Run("returned history copy does not alias internal state", func(t *testing.T) {
		o := testOrder(t)
		history := o.StatusHistory()
		history[0] = order.StatusUpdate{}

		assert.Equal(t, order.StatusNew, o.StatusHistory()[0].Status())
	})
}

func TestOrder_AssignAgent(t *testing.T) {
	o := testOrder(t)
	agentID := kernel.NewUUID()

	require.NoError(t, o.AssignAgent(agentID))
	require.NotNil(t, o.DeliveryAgentID())
	assert.True(t, o.DeliveryAgentID().IsEqual(agentID))

	require.ErrorIs(t, o.AssignAgent(kernel.UUID{}), errs.ErrValueIsRequired)
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	created := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	history := func(t *testing.T) []order.StatusUpdate {
		t.Helper()
		first, err := order.NewStatusUpdate(order.StatusNew, created, "system", "")
		require.NoError(t, err)
		second, err := order.NewStatusUpdate(order.StatusConfirmed, created.Add(time.Hour), "admin", "")
		require.NoError(t, err)
		return []order.StatusUpdate{first, second}
	}

	t.Run("restores full state", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, customerID, "Dana Smith", vendorID, "us-ca-sf",
			nil, testLineItems(t), 9.25,
			order.StatusConfirmed, order.PaymentPaid, "card", "1 Market St",
			created, created.Add(time.Hour), history(t),
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Len(t, o.StatusHistory(), 2)
	})

	t.Run("rejects history that disagrees with status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, customerID, "Dana Smith", vendorID, "us-ca-sf",
			nil, testLineItems(t), 9.25,
			order.StatusProcessing, order.PaymentPaid, "card", "1 Market St",
			created, created, history(t),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty history", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, customerID, "Dana Smith", vendorID, "us-ca-sf",
			nil, testLineItems(t), 9.25,
			order.StatusNew, order.PaymentPending, "card", "1 Market St",
			created, created, nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects total that disagrees with line items", func(t *testing.T) {
		first, err := order.NewStatusUpdate(order.StatusNew, created, "system", "")
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			id, customerID, "Dana Smith", vendorID, "us-ca-sf",
			nil, testLineItems(t), 100.00,
			order.StatusNew, order.PaymentPending, "card", "1 Market St",
			created, created, []order.StatusUpdate{first},
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
