package queries

import (
	"errors"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/pkg/guard"
)

var ErrGetVisibleOrdersQueryIsNotConstructed = errors.New(
	"GetVisibleOrdersQuery must be created via NewGetVisibleOrdersQuery constructor",
)

// GetVisibleOrdersQuery retrieves every order the acting user may see,
// projected into their scope.
//
// Example:
//
//	query, _ := NewGetVisibleOrdersQuery(user)
//	handler := NewGetVisibleOrdersQueryHandler(orderRepo)
//
//	views, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	for _, view := range views {
//	    fmt.Printf("%s: %s\n", view.ID, view.StatusRollup)
//	}
type GetVisibleOrdersQuery struct { //nolint:recvcheck //using for validation
	user actor.Actor

	guard guard.ConstructorGuard
}

// NewGetVisibleOrdersQuery creates a query scoped to the acting user.
func NewGetVisibleOrdersQuery(user actor.Actor) (GetVisibleOrdersQuery, error) {
	query := GetVisibleOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUser(user); err != nil {
		return GetVisibleOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVisibleOrdersQueryIsNotConstructed if validation fails.
func (q GetVisibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVisibleOrdersQueryIsNotConstructed)
}

// User returns the acting user whose scope filters the result.
func (q GetVisibleOrdersQuery) User() actor.Actor {
	return q.user
}

func (q *GetVisibleOrdersQuery) setUser(user actor.Actor) error {
	if err := user.Validate(); err != nil {
		return err
	}
	q.user = user
	return nil
}
