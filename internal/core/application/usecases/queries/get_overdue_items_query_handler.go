package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
)

// GetOverdueItemsQueryHandler retrieves overdue line items straight from
// the database. The read path bypasses aggregate loading: the sweep only
// needs a flat projection, not domain behavior.
type GetOverdueItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueItemsQueryHandler creates a handler for overdue item queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueItemsQueryHandler(db *gorm.DB) GetOverdueItemsQueryHandler {
	return GetOverdueItemsQueryHandler{db: db}
}

// Handle executes the query. An item counts as overdue when its due date
// passed and it has not reached ready or a terminal status.
// Results are sorted by due date, most overdue first.
func (h GetOverdueItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueItemsQuery,
) ([]GetOverdueItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetOverdueItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_name,
			status,
			printshop_id,
			due_date
		FROM order_items
		WHERE due_date < ?
		  AND status IN (?, ?, ?, ?)
		ORDER BY due_date
	`, query.Deadline(),
		order.New.String(), order.Assigned.String(),
		order.InProduction.String(), order.OnHold.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			orderID     uuid.UUID
			productName string
			status      string
			shopID      *uuid.UUID
			dueDate     sql.NullTime
		)

		if err = rows.Scan(&id, &orderID, &productName, &status, &shopID, &dueDate); err != nil {
			return nil, err
		}

		itemResp, respErr := newOverdueResponse(id, orderID, productName, status, shopID, dueDate)
		if respErr != nil {
			return nil, respErr
		}
		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func newOverdueResponse(
	id uuid.UUID,
	orderID uuid.UUID,
	productName string,
	status string,
	shopID *uuid.UUID,
	dueDate sql.NullTime,
) (GetOverdueItemsQueryResponse, error) {
	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOverdueItemsQueryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetOverdueItemsQueryResponse{}, err
	}

	itemStatus, err := order.StatusFromString(status)
	if err != nil {
		return GetOverdueItemsQueryResponse{}, err
	}

	resp := GetOverdueItemsQueryResponse{
		ItemID:      itemID,
		OrderID:     ownerID,
		ProductName: productName,
		Status:      itemStatus,
	}

	if shopID != nil {
		printshopID, shopErr := kernel.UUIDFromBytes((*shopID)[:])
		if shopErr != nil {
			return GetOverdueItemsQueryResponse{}, shopErr
		}
		resp.PrintshopID = &printshopID
	}

	if dueDate.Valid {
		resp.DueDate = dueDate.Time.UTC()
	} else {
		resp.DueDate = time.Time{}
	}

	return resp, nil
}
