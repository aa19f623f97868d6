// Package ports defines repository interfaces for the print fulfillment
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"printflow/internal/core/domain/model/customer"
	"printflow/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer to storage.
	Add(ctx context.Context, customer *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, customer *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll retrieves every customer.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
