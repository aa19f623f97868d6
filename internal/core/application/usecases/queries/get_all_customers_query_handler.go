package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"printflow/internal/core/domain/model/kernel"
)

// GetAllCustomersQueryHandler retrieves customers from the database.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for customer listing.
// Requires a GORM database connection for query execution.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]GetAllCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]GetAllCustomersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			company,
			address
		FROM customers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id      uuid.UUID
			name    string
			email   string
			phone   string
			company *string
			address string
		)

		if err = rows.Scan(&id, &name, &email, &phone, &company, &address); err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		customers = append(customers, GetAllCustomersQueryResponse{
			ID:      customerID,
			Name:    name,
			Email:   email,
			Phone:   phone,
			Company: company,
			Address: address,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
