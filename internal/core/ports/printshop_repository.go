package ports

import (
	"context"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/printshop"
)

// PrintshopRepository defines the persistence contract for printshops.
type PrintshopRepository interface {
	// Add persists a new printshop to storage.
	Add(ctx context.Context, shop *printshop.Printshop) error

	// Update persists changes to an existing printshop.
	Update(ctx context.Context, shop *printshop.Printshop) error

	// Get retrieves a printshop by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*printshop.Printshop, error)

	// GetAll retrieves every printshop.
	GetAll(ctx context.Context) ([]*printshop.Printshop, error)
}
