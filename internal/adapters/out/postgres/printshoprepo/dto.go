// Package printshoprepo provides data transfer objects and mapping functions
// for printshop persistence.
package printshoprepo

import (
	"time"

	"github.com/google/uuid"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/printshop"
)

// PrintshopDTO represents the database structure for persisting printshops.
type PrintshopDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Address   string
	Lat       float64
	Lng       float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for printshop rows.
func (PrintshopDTO) TableName() string {
	return "printshops"
}

// fromDomain converts a printshop entity to its database representation.
func fromDomain(aggregate *printshop.Printshop) PrintshopDTO {
	return PrintshopDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
		Lat:     aggregate.Location().Lat(),
		Lng:     aggregate.Location().Lng(),
	}
}

// toDomain converts a database DTO to a printshop entity.
func toDomain(dto PrintshopDTO) (*printshop.Printshop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	return printshop.RestorePrintshop(id, dto.Name, dto.Address, location)
}
