package printshoprepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/printshop"
	"printflow/internal/pkg/errs"
)

// GormPrintshopRepository implements PrintshopRepository using GORM.
type GormPrintshopRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPrintshopRepository creates a new GORM printshop repository.
func NewGormPrintshopRepository(db *gorm.DB, tracker aggregateTracker) *GormPrintshopRepository {
	return &GormPrintshopRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new printshop to the database.
func (r *GormPrintshopRepository) Add(ctx context.Context, aggregate *printshop.Printshop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing printshop to the database.
func (r *GormPrintshopRepository) Update(ctx context.Context, aggregate *printshop.Printshop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PrintshopDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("printshop", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a printshop by ID.
func (r *GormPrintshopRepository) Get(ctx context.Context, id kernel.UUID) (*printshop.Printshop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PrintshopDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("printshop", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every printshop ordered by name.
func (r *GormPrintshopRepository) GetAll(ctx context.Context) ([]*printshop.Printshop, error) {
	var dtos []PrintshopDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	shops := make([]*printshop.Printshop, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shops = append(shops, p)
	}

	return shops, nil
}
