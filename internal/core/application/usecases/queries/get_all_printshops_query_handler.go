package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"printflow/internal/core/domain/model/kernel"
)

// GetAllPrintshopsQueryHandler retrieves printshops from the database.
type GetAllPrintshopsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPrintshopsQueryHandler creates a handler for printshop listing.
// Requires a GORM database connection for query execution.
func NewGetAllPrintshopsQueryHandler(db *gorm.DB) GetAllPrintshopsQueryHandler {
	return GetAllPrintshopsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name.
func (h GetAllPrintshopsQueryHandler) Handle(
	ctx context.Context,
	query GetAllPrintshopsQuery,
) ([]GetAllPrintshopsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shops := make([]GetAllPrintshopsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			lat,
			lng
		FROM printshops
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       uuid.UUID
			name     string
			address  string
			lat, lng float64
		)

		if err = rows.Scan(&id, &name, &address, &lat, &lng); err != nil {
			return nil, err
		}

		shopID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		location, locErr := kernel.NewGeoPoint(lat, lng)
		if locErr != nil {
			return nil, locErr
		}

		shops = append(shops, GetAllPrintshopsQueryResponse{
			ID:       shopID,
			Name:     name,
			Address:  address,
			Location: location,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shops, nil
}
