// Package memstore provides an in-memory storage backend implementing the
// repository ports and the Unit of Work pattern. It backs single-process
// deployments and demos where no database is provisioned; the postgres
// adapter is the durable alternative.
//
// A single mutex guards the whole store. A unit of work holds the lock from
// Begin until Commit or Rollback, so transactions serialize and each one sees
// a consistent snapshot. Repository writes apply immediately under the lock
// and are journaled; Rollback replays the journal in reverse.
//
// Aggregates are persisted as value-type records, never as live pointers, so
// a handler mutating an aggregate it read does not leak changes into the
// store before Update is called.
package memstore

import (
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/order"
)

// performanceKey identifies one agent's performance row for one calendar day.
type performanceKey struct {
	agentID kernel.UUID
	day     time.Time
}

// Store is the shared in-memory state behind every unit of work.
type Store struct {
	mu sync.Mutex

	locations     map[location.ID]locationRecord
	vendors       map[kernel.UUID]vendorRecord
	orders        map[kernel.UUID]orderRecord
	agents        map[kernel.UUID]agentRecord
	performance   map[performanceKey]performanceRecord
	notifications map[kernel.UUID]notificationRecord
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		locations:     make(map[location.ID]locationRecord),
		vendors:       make(map[kernel.UUID]vendorRecord),
		orders:        make(map[kernel.UUID]orderRecord),
		agents:        make(map[kernel.UUID]agentRecord),
		performance:   make(map[performanceKey]performanceRecord),
		notifications: make(map[kernel.UUID]notificationRecord),
	}
}

// orderMatches applies an order filter to a stored record.
func orderMatches(record orderRecord, status *order.Status, vendorID *kernel.UUID, locationID *location.ID) bool {
	if status != nil && record.Status != *status {
		return false
	}
	if vendorID != nil && !record.VendorID.IsEqual(*vendorID) {
		return false
	}
	if locationID != nil && record.LocationID != *locationID {
		return false
	}
	return true
}
