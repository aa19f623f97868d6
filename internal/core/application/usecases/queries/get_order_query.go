package queries

import (
	"errors"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order by id, projected into the acting
// user's scope. An order outside the user's scope reads as not found, so
// scoped roles cannot probe for foreign order ids.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	user    actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order scoped to the acting user.
func NewGetOrderQuery(orderID kernel.UUID, user actor.Actor) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setUser(user),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// User returns the acting user whose scope filters the result.
func (q GetOrderQuery) User() actor.Actor {
	return q.user
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setUser(user actor.Actor) error {
	if err := user.Validate(); err != nil {
		return err
	}
	q.user = user
	return nil
}
