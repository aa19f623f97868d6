package services

import (
	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/order"
)

// VisibilityFilter is a domain service that scopes the order universe down
// to what an acting user may see. It is a pure filter over aggregates
// loaded elsewhere; it never mutates them.
//
// Business rules:
//   - Managers see everything.
//   - A printshop manager sees an order when any of its items is assigned
//     to one of their shops, and sees exactly the items assigned to their
//     shops. Item notes follow their item; order-level notes are visible
//     for the everyone and printshop departments.
//   - A driver sees an order when its delivery method is delivery and
//     every item is ready, out for delivery or delivered. Visible items
//     are the ones in that status set. Notes are visible for the
//     everyone, printshop and delivery departments.
//
// ScopedRollup composes the filter with StatusRollup so that a scoped
// user's perceived order status reflects only their slice of the order,
// not the whole of it.
//
// Example usage:
//
//	filter := services.NewVisibilityFilter()
//	visible := filter.VisibleOrders(user, orders)
//	for _, ord := range visible {
//	    status := filter.ScopedRollup(user, ord)
//	    items := filter.VisibleItems(user, ord)
//	    // project for presentation
//	}
type VisibilityFilter struct {
	rollup StatusRollup
}

// NewVisibilityFilter creates a new VisibilityFilter instance.
func NewVisibilityFilter() VisibilityFilter {
	return VisibilityFilter{rollup: NewStatusRollup()}
}

// driverStatuses is the status set a driver works with. An order enters a
// driver's world only once every item has reached it.
func driverStatuses() map[order.Status]bool {
	return map[order.Status]bool{
		order.Ready:          true,
		order.OutForDelivery: true,
		order.Delivered:      true,
	}
}

// IsOrderVisible reports whether the acting user may see the order at all.
func (f VisibilityFilter) IsOrderVisible(user actor.Actor, ord *order.Order) bool {
	switch user.Role() {
	case actor.Manager:
		return true
	case actor.PrintshopManager:
		for _, item := range ord.Items() {
			if user.InShopScope(item.Printshop()) {
				return true
			}
		}
		return false
	case actor.Driver:
		if ord.DeliveryMethod() != order.MethodDelivery {
			return false
		}
		allowed := driverStatuses()
		for _, item := range ord.Items() {
			if !allowed[item.Status()] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// VisibleOrders filters the given orders down to those the user may see.
// The input slice is never modified.
func (f VisibilityFilter) VisibleOrders(user actor.Actor, orders []*order.Order) []*order.Order {
	visible := make([]*order.Order, 0, len(orders))
	for _, ord := range orders {
		if f.IsOrderVisible(user, ord) {
			visible = append(visible, ord)
		}
	}
	return visible
}

// VisibleItems returns the order's items the user may see. For a manager
// that is every item; scoped roles get their slice of the order.
func (f VisibilityFilter) VisibleItems(user actor.Actor, ord *order.Order) []*order.Item {
	items := ord.Items()

	switch user.Role() {
	case actor.Manager:
		return items
	case actor.PrintshopManager:
		visible := make([]*order.Item, 0, len(items))
		for _, item := range items {
			if user.InShopScope(item.Printshop()) {
				visible = append(visible, item)
			}
		}
		return visible
	case actor.Driver:
		allowed := driverStatuses()
		visible := make([]*order.Item, 0, len(items))
		for _, item := range items {
			if allowed[item.Status()] {
				visible = append(visible, item)
			}
		}
		return visible
	default:
		return nil
	}
}

// VisibleNotes returns the order's notes the user may read. Item notes
// inherit visibility from their item for shop-scoped users; order-level
// notes are gated by department.
func (f VisibilityFilter) VisibleNotes(user actor.Actor, ord *order.Order) []order.Note {
	notes := ord.Notes()

	switch user.Role() {
	case actor.Manager:
		return notes
	case actor.PrintshopManager:
		visibleItems := make(map[string]bool)
		for _, item := range f.VisibleItems(user, ord) {
			visibleItems[item.ID().String()] = true
		}
		visible := make([]order.Note, 0, len(notes))
		for _, note := range notes {
			if itemID := note.ItemID(); itemID != nil {
				if visibleItems[itemID.String()] {
					visible = append(visible, note)
				}
				continue
			}
			switch note.Department() {
			case order.DepartmentEveryone, order.DepartmentPrintshop:
				visible = append(visible, note)
			}
		}
		return visible
	case actor.Driver:
		visible := make([]order.Note, 0, len(notes))
		for _, note := range notes {
			switch note.Department() {
			case order.DepartmentEveryone, order.DepartmentPrintshop, order.DepartmentDelivery:
				visible = append(visible, note)
			}
		}
		return visible
	default:
		return nil
	}
}

// ScopedRollup computes the order's aggregate status over the items the
// user may see. A manager's rollup covers the whole order; a printshop
// manager viewing one in_production item of an otherwise mixed order
// perceives the order as in_production.
func (f VisibilityFilter) ScopedRollup(user actor.Actor, ord *order.Order) order.RollupStatus {
	return f.rollup.Compute(f.VisibleItems(user, ord))
}
