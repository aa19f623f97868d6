// Package queries contains read-only operations over the order universe.
// Implements the Query side of the CQRS architecture: every handler composes
// the visibility filter with the status rollup and returns immutable view
// records, so presentation callers never recompute scoping or rollup
// themselves.
package queries

import (
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
)

// ItemView is the read model for one line item as the acting user sees it.
type ItemView struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	ProductName       string
	Quantity          int
	Status            order.Status
	StatusLabel       string
	PrintshopID       *kernel.UUID
	DueDate           *time.Time
	ProductionStartAt *time.Time
	ProductionReadyAt *time.Time
	DeliveredAt       *time.Time
}

// NoteView is the read model for a note the acting user may read.
type NoteView struct {
	ID         kernel.UUID
	ItemID     *kernel.UUID
	Department order.Department
	Author     string
	Text       string
	CreatedAt  time.Time
}

// OrderView is the read model for an order scoped to the acting user.
// StatusRollup is computed over the visible items only, so a printshop
// manager's perceived order status covers just their slice of the order.
type OrderView struct {
	ID             kernel.UUID
	ExternalID     *string
	CustomerID     kernel.UUID
	DeliveryMethod order.DeliveryMethod
	PaymentStatus  order.PaymentStatus
	StatusRollup   order.RollupStatus
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Items          []ItemView
	Notes          []NoteView
}

func newItemView(item *order.Item) ItemView {
	return ItemView{
		ID:                item.ID(),
		OrderID:           item.OrderID(),
		ProductName:       item.ProductName(),
		Quantity:          item.Quantity(),
		Status:            item.Status(),
		StatusLabel:       item.Status().Label(),
		PrintshopID:       item.Printshop(),
		DueDate:           item.DueDate(),
		ProductionStartAt: item.ProductionStartAt(),
		ProductionReadyAt: item.ProductionReadyAt(),
		DeliveredAt:       item.DeliveredAt(),
	}
}

func newNoteView(note order.Note) NoteView {
	return NoteView{
		ID:         note.ID(),
		ItemID:     note.ItemID(),
		Department: note.Department(),
		Author:     note.Author(),
		Text:       note.Text(),
		CreatedAt:  note.CreatedAt(),
	}
}

// newOrderView projects an aggregate into the acting user's view: visible
// items and notes only, with the rollup computed over that subset.
func newOrderView(filter services.VisibilityFilter, user actor.Actor, aggregate *order.Order) OrderView {
	visibleItems := filter.VisibleItems(user, aggregate)
	items := make([]ItemView, 0, len(visibleItems))
	for _, item := range visibleItems {
		items = append(items, newItemView(item))
	}

	visibleNotes := filter.VisibleNotes(user, aggregate)
	notes := make([]NoteView, 0, len(visibleNotes))
	for _, note := range visibleNotes {
		notes = append(notes, newNoteView(note))
	}

	return OrderView{
		ID:             aggregate.ID(),
		ExternalID:     aggregate.ExternalID(),
		CustomerID:     aggregate.CustomerID(),
		DeliveryMethod: aggregate.DeliveryMethod(),
		PaymentStatus:  aggregate.PaymentStatus(),
		StatusRollup:   filter.ScopedRollup(user, aggregate),
		Version:        aggregate.Version(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Items:          items,
		Notes:          notes,
	}
}
