package services

import (
	"printflow/internal/core/domain/model/order"
)

// StatusRollup is a domain service that derives a single aggregate status
// for an order from the statuses of its line items.
//
// Key properties:
//   - Pure: no side effects, no caching; call it on every read
//   - Order-independent: any permutation of the same items yields the same result
//   - Idempotent: repeated calls on unchanged input yield identical output
//
// Business rules (evaluated in order, first match wins):
//  1. An order with no items rolls up as new.
//  2. Canceled items are excluded; if nothing remains, the order is canceled.
//  3. If every remaining item shares one status, that status is the rollup.
//  4. Any new item pulls the rollup back to new; any of assigned,
//     in_production or on_hold rolls up as in_production; a pure
//     delivery-stage mix (delivered, picked_up, out_for_delivery) rolls up
//     as out_for_delivery while any item is still on the road.
//  5. Everything else is mixed.
//
// Example usage:
//
//	rollup := services.NewStatusRollup()
//	status := rollup.Compute(ord.Items())
type StatusRollup struct{}

// NewStatusRollup creates a new StatusRollup instance.
func NewStatusRollup() StatusRollup {
	return StatusRollup{}
}

// Compute derives the aggregate status for the given items.
// A nil or empty slice rolls up as RollupNew.
func (StatusRollup) Compute(items []*order.Item) order.RollupStatus {
	if len(items) == 0 {
		return order.RollupNew
	}

	active := make([]order.Status, 0, len(items))
	for _, item := range items {
		if item.Status() != order.Canceled {
			active = append(active, item.Status())
		}
	}
	if len(active) == 0 {
		return order.RollupCanceled
	}

	allSame := true
	for _, status := range active[1:] {
		if status != active[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return order.RollupFromStatus(active[0])
	}

	var (
		hasNew        bool
		hasProduction bool
		hasDelivery   bool
		deliveryOnly  = true
	)
	for _, status := range active {
		switch status {
		case order.New:
			hasNew = true
			deliveryOnly = false
		case order.Assigned, order.InProduction, order.OnHold:
			hasProduction = true
			deliveryOnly = false
		case order.Delivered, order.PickedUp:
			// delivery stage, settled
		case order.OutForDelivery:
			hasDelivery = true
		default:
			deliveryOnly = false
		}
	}

	switch {
	case hasNew:
		return order.RollupNew
	case hasProduction:
		return order.RollupInProduction
	case deliveryOnly && hasDelivery:
		// Settled statuses differ (step 3 failed), so at least one item
		// still out for delivery names the whole order.
		return order.RollupOutForDelivery
	default:
		return order.RollupMixed
	}
}
