package queries

import (
	"context"

	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"
)

// GetOrdersByCustomerQueryHandler lists a customer's orders scoped to the
// acting user.
type GetOrdersByCustomerQueryHandler struct {
	orderRepo ports.OrderRepository
	filter    services.VisibilityFilter
}

// NewGetOrdersByCustomerQueryHandler creates a handler for per-customer reads.
func NewGetOrdersByCustomerQueryHandler(orderRepo ports.OrderRepository) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{
		orderRepo: orderRepo,
		filter:    services.NewVisibilityFilter(),
	}
}

// Handle executes the query.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	visible := h.filter.VisibleOrders(query.User(), orders)
	views := make([]OrderView, 0, len(visible))
	for _, aggregate := range visible {
		views = append(views, newOrderView(h.filter, query.User(), aggregate))
	}

	return views, nil
}
