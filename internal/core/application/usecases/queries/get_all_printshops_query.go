package queries

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrGetAllPrintshopsQueryIsNotConstructed = errors.New(
	"GetAllPrintshopsQuery must be created via NewGetAllPrintshopsQuery constructor",
)

// GetAllPrintshopsQuery retrieves every registered printshop.
// Feeds assignment pickers and the dashboard's shop map.
type GetAllPrintshopsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPrintshopsQuery creates a query to retrieve all printshops.
// This is a parameterless query.
func NewGetAllPrintshopsQuery() GetAllPrintshopsQuery {
	return GetAllPrintshopsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllPrintshopsQueryIsNotConstructed if validation fails.
func (q GetAllPrintshopsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPrintshopsQueryIsNotConstructed)
}

// GetAllPrintshopsQueryResponse represents one printshop.
type GetAllPrintshopsQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Address  string
	Location kernel.GeoPoint
}
