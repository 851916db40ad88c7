// Package agent models delivery personnel: availability status, zone
// assignments, and the per-day performance aggregates written when orders
// are delivered.
//
// The core invariant is that an agent is on_delivery if and only if it has
// a current order. StartDelivery and FinishDelivery are the only mutations
// that touch the pair, so the invariant holds by construction; RestoreAgent
// re-checks it when loading from persistence.
package agent
