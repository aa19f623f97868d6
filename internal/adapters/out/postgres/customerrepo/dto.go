// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"github.com/google/uuid"

	"printflow/internal/core/domain/model/customer"
	"printflow/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string
	Phone     string
	Company   *string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for customer rows.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer entity to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Email:   aggregate.Email(),
		Phone:   aggregate.Phone(),
		Company: aggregate.Company(),
		Address: aggregate.Address(),
		Notes:   aggregate.Notes(),
	}
}

// toDomain converts a database DTO to a customer entity.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.Company,
		dto.Address,
		dto.Notes,
	)
}
