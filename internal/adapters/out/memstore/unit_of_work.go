package memstore

import (
	"context"
	"errors"

	"marketplace/internal/core/ports"
)

// ErrNoActiveTransaction reports repository use or commit outside Begin/Commit.
var ErrNoActiveTransaction = errors.New("memstore: no active transaction")

// UnitOfWorkFactory creates unit of work instances over one shared store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a fresh unit of work. Each business operation gets its own
// instance; instances must not be shared between goroutines.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is a serialized transaction over the in-memory store.
// Begin takes the store lock; writes apply immediately and are journaled so
// Rollback can restore the pre-transaction state. Commit discards the
// journal. Both release the lock.
type UnitOfWork struct {
	store  *Store
	active bool
	undo   []func()
}

// Begin starts the transaction by acquiring the store lock.
// Calling Begin on an already active unit of work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}
	uow.store.mu.Lock()
	uow.active = true
	uow.undo = uow.undo[:0]
	return nil
}

// Commit makes the journaled writes permanent and releases the store lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.undo = nil
	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// Rollback restores the pre-transaction state and releases the store lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	for i := len(uow.undo) - 1; i >= 0; i-- {
		uow.undo[i]()
	}
	uow.undo = nil
	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// journal records how to undo one write.
func (uow *UnitOfWork) journal(undo func()) {
	uow.undo = append(uow.undo, undo)
}

// LocationRepository returns a LocationRepository bound to this transaction.
func (uow *UnitOfWork) LocationRepository() ports.LocationRepository {
	return &locationRepository{txAccess{store: uow.store, uow: uow}}
}

// VendorRepository returns a VendorRepository bound to this transaction.
func (uow *UnitOfWork) VendorRepository() ports.VendorRepository {
	return &vendorRepository{txAccess{store: uow.store, uow: uow}}
}

// OrderRepository returns an OrderRepository bound to this transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{txAccess{store: uow.store, uow: uow}}
}

// AgentRepository returns an AgentRepository bound to this transaction.
func (uow *UnitOfWork) AgentRepository() ports.AgentRepository {
	return &agentRepository{txAccess{store: uow.store, uow: uow}}
}

// PerformanceRepository returns a PerformanceRepository bound to this transaction.
func (uow *UnitOfWork) PerformanceRepository() ports.PerformanceRepository {
	return &performanceRepository{txAccess{store: uow.store, uow: uow}}
}

// NotificationRepository returns a NotificationRepository bound to this transaction.
func (uow *UnitOfWork) NotificationRepository() ports.NotificationRepository {
	return &notificationRepository{txAccess{store: uow.store, uow: uow}}
}
