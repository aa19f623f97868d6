package queries

import (
	"errors"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
)

// GetOrdersByCustomerQuery retrieves a customer's orders, projected into
// the acting user's scope.
type GetOrdersByCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	user       actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query for one customer's orders.
func NewGetOrdersByCustomerQuery(
	customerID kernel.UUID,
	user actor.Actor,
) (GetOrdersByCustomerQuery, error) {
	query := GetOrdersByCustomerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setCustomerID(customerID),
		query.setUser(user),
	); err != nil {
		return GetOrdersByCustomerQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer.
func (q GetOrdersByCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// User returns the acting user whose scope filters the result.
func (q GetOrdersByCustomerQuery) User() actor.Actor {
	return q.user
}

func (q *GetOrdersByCustomerQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	q.customerID = customerID
	return nil
}

func (q *GetOrdersByCustomerQuery) setUser(user actor.Actor) error {
	if err := user.Validate(); err != nil {
		return err
	}
	q.user = user
	return nil
}
