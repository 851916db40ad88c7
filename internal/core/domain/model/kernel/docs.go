// Package kernel contains shared value objects used across all domain aggregates.
//
// The central type is UUID, an immutable identifier wrapper around
// github.com/google/uuid. Every aggregate except locations (which carry
// admin-assigned slug identifiers) is identified by a kernel.UUID generated
// at creation time, never derived from collection state.
package kernel
