package commands

import (
	"marketplace/internal/core/ports"
)

// Factory adapters narrowing the store-level unit of work factory to the
// shape each command handler depends on. The concrete ports.UnitOfWork
// carries every repository, so each adapter only restates the return type.

type locationUoWFactory struct{ inner ports.UnitOfWorkFactory }

// NewLocationUoWFactory adapts a store factory for location handlers.
func NewLocationUoWFactory(f ports.UnitOfWorkFactory) LocationUoWFactory {
	return locationUoWFactory{inner: f}
}

func (a locationUoWFactory) Create() LocationUoW { return a.inner.Create() }

type vendorUoWFactory struct{ inner ports.UnitOfWorkFactory }

// NewVendorUoWFactory adapts a store factory for vendor handlers.
func NewVendorUoWFactory(f ports.UnitOfWorkFactory) VendorUoWFactory {
	return vendorUoWFactory{inner: f}
}

func (a vendorUoWFactory) Create() VendorUoW { return a.inner.Create() }

type orderUoWFactory struct{ inner ports.UnitOfWorkFactory }

// NewOrderUoWFactory adapts a store factory for order handlers.
func NewOrderUoWFactory(f ports.UnitOfWorkFactory) OrderUoWFactory {
	return orderUoWFactory{inner: f}
}

func (a orderUoWFactory) Create() OrderUoW { return a.inner.Create() }

type agentUoWFactory struct{ inner ports.UnitOfWorkFactory }

// NewAgentUoWFactory adapts a store factory for agent handlers.
func NewAgentUoWFactory(f ports.UnitOfWorkFactory) AgentUoWFactory {
	return agentUoWFactory{inner: f}
}

func (a agentUoWFactory) Create() AgentUoW { return a.inner.Create() }

type dispatchUoWFactory struct{ inner ports.UnitOfWorkFactory }

// NewDispatchUoWFactory adapts a store factory for assignment handlers.
func NewDispatchUoWFactory(f ports.UnitOfWorkFactory) DispatchUoWFactory {
	return dispatchUoWFactory{inner: f}
}

func (a dispatchUoWFactory) Create() DispatchUoW { return a.inner.Create() }

type deliveryUoWFactory struct{ inner ports.UnitOfWorkFactory }

// NewDeliveryUoWFactory adapts a store factory for delivery status handlers.
func NewDeliveryUoWFactory(f ports.UnitOfWorkFactory) DeliveryUoWFactory {
	return deliveryUoWFactory{inner: f}
}

func (a deliveryUoWFactory) Create() DeliveryUoW { return a.inner.Create() }

type statsUoWFactory struct{ inner ports.UnitOfWorkFactory }

// NewStatsUoWFactory adapts a store factory for the stats rollup handler.
func NewStatsUoWFactory(f ports.UnitOfWorkFactory) StatsUoWFactory {
	return statsUoWFactory{inner: f}
}

func (a statsUoWFactory) Create() StatsUoW { return a.inner.Create() }

type notificationUoWFactory struct{ inner ports.UnitOfWorkFactory }

// NewNotificationUoWFactory adapts a store factory for notification cleanup.
func NewNotificationUoWFactory(f ports.UnitOfWorkFactory) NotificationUoWFactory {
	return notificationUoWFactory{inner: f}
}

func (a notificationUoWFactory) Create() NotificationUoW { return a.inner.Create() }
