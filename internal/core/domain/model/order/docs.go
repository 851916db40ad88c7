// Package order models the order ledger aggregate: line items, payment
// attributes, delivery assignment, and an append-only status history.
//
// The status state machine lives in this package and nowhere else. Every
// mutation of an order's status goes through Order.TransitionTo, which
// checks the transition table and appends a StatusUpdate; callers that want
// to render available actions query Status.AllowedNext from the same table,
// so the ledger and its consumers can never disagree about legality.
package order
