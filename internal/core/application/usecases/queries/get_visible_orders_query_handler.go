package queries

import (
	"context"

	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"
)

// GetVisibleOrdersQueryHandler lists orders scoped to the acting user.
// Loads the full record set and applies the visibility filter in the
// domain; the store never knows about roles.
type GetVisibleOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
	filter    services.VisibilityFilter
}

// NewGetVisibleOrdersQueryHandler creates a handler for scoped order listing.
func NewGetVisibleOrdersQueryHandler(orderRepo ports.OrderRepository) GetVisibleOrdersQueryHandler {
	return GetVisibleOrdersQueryHandler{
		orderRepo: orderRepo,
		filter:    services.NewVisibilityFilter(),
	}
}

// Handle executes the query. Rollups are recomputed on every call; views
// are never cached across mutations.
func (h GetVisibleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVisibleOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAll(ctx)
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
