package queries

import (
	"errors"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/guard"
)

var ErrGetItemsQueryIsNotConstructed = errors.New(
	"GetItemsQuery must be created via a NewItemsBy... constructor",
)

// GetItemsQuery retrieves line items across all visible orders, optionally
// narrowed to one status, one printshop, or both. Feeds board-style
// consumers (kanban columns, shop work queues).
//
// Example:
//
//	query, _ := NewItemsByPrintshopAndStatusQuery(user, shopID, order.Ready)
//	handler := NewGetItemsQueryHandler(orderRepo)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetItemsQuery struct { //nolint:recvcheck //using for validation
	user   actor.Actor
	shopID *kernel.UUID
	status *order.Status

	guard guard.ConstructorGuard
}

// NewItemsByStatusQuery creates a query for visible items in one status.
func NewItemsByStatusQuery(user actor.Actor, status order.Status) (GetItemsQuery, error) {
	query := GetItemsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUser(user),
		query.setStatus(status),
	); err != nil {
		return GetItemsQuery{}, err
	}

	return query, nil
}

// NewItemsByPrintshopQuery creates a query for visible items assigned to
// one printshop.
func NewItemsByPrintshopQuery(user actor.Actor, shopID kernel.UUID) (GetItemsQuery, error) {
	query := GetItemsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUser(user),
		query.setShopID(shopID),
	); err != nil {
		return GetItemsQuery{}, err
	}

	return query, nil
}

// NewItemsByPrintshopAndStatusQuery creates a query narrowed to both a
// printshop and a status.
func NewItemsByPrintshopAndStatusQuery(
	user actor.Actor,
	shopID kernel.UUID,
	status order.Status,
) (GetItemsQuery, error) {
	query := GetItemsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUser(user),
		query.setShopID(shopID),
		query.setStatus(status),
	); err != nil {
		return GetItemsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetItemsQueryIsNotConstructed if validation fails.
func (q GetItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsQueryIsNotConstructed)
}

// User returns the acting user whose scope filters the result.
func (q GetItemsQuery) User() actor.Actor {
	return q.user
}

// ShopID returns the printshop narrowing, nil when not set.
func (q GetItemsQuery) ShopID() *kernel.UUID {
	return q.shopID
}

// Status returns the status narrowing, nil when not set.
func (q GetItemsQuery) Status() *order.Status {
	return q.status
}

func (q *GetItemsQuery) setUser(user actor.Actor) error {
	if err := user.Validate(); err != nil {
		return err
	}
	q.user = user
	return nil
}

func (q *GetItemsQuery) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	q.shopID = &shopID
	return nil
}

func (q *GetItemsQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = &status
	return nil
}
