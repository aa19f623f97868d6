package ports

import (
	"context"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders together
// with their items, notes and status history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with a ConflictError when the stored version no longer matches
	// the aggregate's version (another writer got there first).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with items, notes and history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemID retrieves the order aggregate owning the given item.
	// Item mutations load the whole aggregate to keep cascades atomic.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order aggregate. Visibility scoping happens
	// in the domain, not in the store.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByCustomer retrieves all orders placed by the given customer.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByPrintshop retrieves all orders with at least one item assigned
	// to the given printshop.
	GetByPrintshop(ctx context.Context, shopID kernel.UUID) ([]*order.Order, error)

	// GetWithItemsDueBefore retrieves orders holding at least one
	// non-terminal item whose due date falls before the deadline.
	GetWithItemsDueBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error)
}
