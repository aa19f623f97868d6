// Package services provides domain services that operate across the order
// aggregate and the acting user in the print fulfillment system. It
// implements logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - StatusRollup: derives an order's aggregate status from its items' statuses
//   - VisibilityFilter: scopes orders, items and notes to what a role may see
//
// Domain services stay pure: they never mutate aggregates and never touch
// persistence, following Domain-Driven Design principles.
package services
