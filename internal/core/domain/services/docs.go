// Package services provides domain services that orchestrate business operations
// across multiple domain entities. It implements workflows that don't naturally
// belong to a single aggregate root.
//
// The package includes:
//   - DeliveryDispatcher: A domain service assigning delivery agents to orders
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
