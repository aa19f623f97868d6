package queries

import (
	"errors"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/guard"
)

var ErrGetOverdueItemsQueryIsNotConstructed = errors.New(
	"GetOverdueItemsQuery must be created via NewGetOverdueItemsQuery constructor",
)

// GetOverdueItemsQuery retrieves items past their due date that have not
// reached production-ready yet. Feeds the due-date sweep job and the
// dashboard's overdue feed.
//
// Example:
//
//	query, _ := NewGetOverdueItemsQuery(time.Now())
//	handler := NewGetOverdueItemsQueryHandler(db)
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get overdue items: %w", err)
//	}
//	fmt.Printf("%d items past due\n", len(overdue))
type GetOverdueItemsQuery struct { //nolint:recvcheck //using for validation
	deadline time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueItemsQuery creates a query for items due before the deadline.
func NewGetOverdueItemsQuery(deadline time.Time) (GetOverdueItemsQuery, error) {
	query := GetOverdueItemsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDeadline(deadline); err != nil {
		return GetOverdueItemsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueItemsQueryIsNotConstructed if validation fails.
func (q GetOverdueItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueItemsQueryIsNotConstructed)
}

// Deadline returns the cutoff; items due strictly before it are overdue.
func (q GetOverdueItemsQuery) Deadline() time.Time {
	return q.deadline
}

func (q *GetOverdueItemsQuery) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errors.New("deadline is required")
	}
	q.deadline = deadline
	return nil
}

// GetOverdueItemsQueryResponse represents one overdue line item.
type GetOverdueItemsQueryResponse struct {
	ItemID      kernel.UUID
	OrderID     kernel.UUID
	ProductName string
	Status      order.Status
	PrintshopID *kernel.UUID
	DueDate     time.Time
}
