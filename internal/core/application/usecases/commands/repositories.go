// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each command depends only on the narrowest UoW shape it needs; the concrete
// store-level UnitOfWork satisfies all of them.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LocationRepoFactory provides access to the location repository within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// VendorRepoFactory provides access to the vendor repository within a transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AgentRepoFactory provides access to the agent repository within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// PerformanceRepoFactory provides access to the performance repository within a transaction.
	PerformanceRepoFactory interface {
		PerformanceRepository() ports.PerformanceRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// LocationUoW manages transactions for location-only operations.
	LocationUoW interface {
		TxManager
		LocationRepoFactory
	}

	// LocationUoWFactory creates new location unit of work instances.
	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// VendorUoW manages transactions for vendor operations. Location access
	// validates served locations on create/update; order access backs the
	// open-order guard on delete.
	VendorUoW interface {
		TxManager
		VendorRepoFactory
		LocationRepoFactory
		OrderRepoFactory
	}

	// VendorUoWFactory creates new vendor unit of work instances.
	VendorUoWFactory interface {
		Create() VendorUoW
	}

	// OrderUoW manages transactions for order operations. Vendor and location
	// access validates references on create.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		VendorRepoFactory
		LocationRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AgentUoW manages transactions for agent-only operations.
	AgentUoW interface {
		TxManager
		AgentRepoFactory
	}

	// AgentUoWFactory creates new agent unit of work instances.
	AgentUoWFactory interface {
		Create() AgentUoW
	}

	// DispatchUoW manages transactions for order-to-agent assignment.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
		NotificationRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// DeliveryUoW manages transactions for delivery status progression,
	// including agent commission and per-day performance rollups.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
		PerformanceRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// StatsUoW manages transactions for the location stats rollup.
	StatsUoW interface {
		TxManager
		LocationRepoFactory
		VendorRepoFactory
		OrderRepoFactory
	}

	// StatsUoWFactory creates new stats unit of work instances.
	StatsUoWFactory interface {
		Create() StatsUoW
	}

	// NotificationUoW manages transactions for notification cleanup.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
