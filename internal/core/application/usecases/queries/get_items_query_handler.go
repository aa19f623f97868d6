package queries

import (
	"context"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"
)

// GetItemsQueryHandler lists visible line items across orders, applying
// the query's optional printshop and status narrowing after the
// visibility filter.
type GetItemsQueryHandler struct {
	orderRepo ports.OrderRepository
	filter    services.VisibilityFilter
}

// NewGetItemsQueryHandler creates a handler for item board queries.
func NewGetItemsQueryHandler(orderRepo ports.OrderRepository) GetItemsQueryHandler {
	return GetItemsQueryHandler{
		orderRepo: orderRepo,
		filter:    services.NewVisibilityFilter(),
	}
}

// Handle executes the query.
func (h GetItemsQueryHandler) Handle(ctx context.Context, query GetItemsQuery) ([]ItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.loadOrders(ctx, query)
	if err != nil {
		return nil, err
	}

	views := make([]ItemView, 0)
	for _, aggregate := range h.filter.VisibleOrders(query.User(), orders) {
		for _, item := range h.filter.VisibleItems(query.User(), aggregate) {
			if !h.matches(query, item) {
				continue
			}
			views = append(views, newItemView(item))
		}
	}

	return views, nil
}

func (h GetItemsQueryHandler) loadOrders(
	ctx context.Context,
	query GetItemsQuery,
) ([]*order.Order, error) {
	if shopID := query.ShopID(); shopID != nil {
		return h.orderRepo.GetByPrintshop(ctx, *shopID)
	}
	return h.orderRepo.GetAll(ctx)
}

func (h GetItemsQueryHandler) matches(query GetItemsQuery, item *order.Item) bool {
	if shopID := query.ShopID(); shopID != nil {
		if item.Printshop() == nil || !item.Printshop().IsEqual(*shopID) {
			return false
		}
	}
	if status := query.Status(); status != nil && item.Status() != *status {
		return false
	}
	return true
}
