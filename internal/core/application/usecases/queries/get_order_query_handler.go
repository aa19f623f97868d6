package queries

import (
	"context"

	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order scoped to the acting user.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
	filter    services.VisibilityFilter
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orderRepo: orderRepo,
		filter:    services.NewVisibilityFilter(),
	}
}

// Handle executes the query. Returns ObjectNotFoundError for unknown ids
// and for orders the user may not see.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	if !h.filter.IsOrderVisible(query.User(), aggregate) {
		return OrderView{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return newOrderView(h.filter, query.User(), aggregate), nil
}
