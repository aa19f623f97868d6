// Package order contains the print-order aggregate and its line items.
//
// The aggregate root is Order: it owns a list of Items, the customer
// reference, the delivery method, and the payment fields. Each Item carries
// its own fulfillment Status, optional printshop assignment, production
// timestamps, and an append-only status history.
//
// The package is also the single home of the status model: the Status
// enumeration, its labels, ordering and terminality, and the per-role
// permission tables (see status.go). Presentation layers consume these
// tables instead of duplicating them.
//
// An order's aggregate status is not stored here: it is derived from the
// items' statuses on every read by the rollup service in
// internal/core/domain/services.
package order
