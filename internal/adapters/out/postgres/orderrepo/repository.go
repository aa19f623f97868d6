package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database together with its items and notes.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database. The root row is updated
// with a compare-and-swap on the version column; a concurrent writer that
// bumped the version first makes this call fail with a ConflictError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Map-based Updates so cleared nullable columns are written as NULL.
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"external_id":    dto.ExternalID,
			"payment_status": dto.PaymentStatus,
			"payment_method": dto.PaymentMethod,
			"amount_paid":    dto.AmountPaid,
			"updated_at":     dto.UpdatedAt,
			"version":        dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	if err := r.saveChildren(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// saveChildren upserts items and appends new history entries and notes.
// History rows and notes are append-only, so existing ones are left alone.
func (r *GormOrderRepository) saveChildren(ctx context.Context, dto OrderDTO) error {
	tx := r.db.WithContext(ctx)

	if len(dto.Items) > 0 {
		if err := tx.Omit("History").
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&dto.Items).Error; err != nil {
			return err
		}
		for _, item := range dto.Items {
			if len(item.History) == 0 {
				continue
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&item.History).Error; err != nil {
				return err
			}
		}
	}

	if len(dto.Notes) > 0 {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Notes).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order by ID with items, history and notes.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withAggregate(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByItemID retrieves the order owning the given item.
func (r *GormOrderRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var itemDTO ItemDTO
	if err := r.db.WithContext(ctx).
		Select("id", "order_id").
		First(&itemDTO, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", itemID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(itemDTO.OrderID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, orderID)
}

// GetAll retrieves every order with items, history and notes.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withAggregate(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return collect(dtos)
}

// GetByCustomer retrieves all orders placed by the given customer.
func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.withAggregate(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return collect(dtos)
}

// GetByPrintshop retrieves all orders with at least one item assigned to
// the given printshop.
func (r *GormOrderRepository) GetByPrintshop(ctx context.Context, shopID kernel.UUID) ([]*order.Order, error) {
	if err := shopID.Validate(); err != nil {
		return nil, err
	}

	sub := r.db.Model(&ItemDTO{}).
		Select("order_id").
		Where("printshop_id = ?", shopID.Bytes())

	var dtos []OrderDTO
	if err := r.withAggregate(ctx).
		Where("id IN (?)", sub).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return collect(dtos)
}

// GetWithItemsDueBefore retrieves orders holding at least one non-terminal
// item whose due date falls before the deadline.
func (r *GormOrderRepository) GetWithItemsDueBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error) {
	terminal := []string{
		order.Delivered.String(),
		order.PickedUp.String(),
		order.Canceled.String(),
	}

	sub := r.db.Model(&ItemDTO{}).
		Select("order_id").
		Where("due_date < ?", deadline).
		Where("status NOT IN ?", terminal)

	var dtos []OrderDTO
	if err := r.withAggregate(ctx).
		Where("id IN (?)", sub).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return collect(dtos)
}

// withAggregate preloads the full aggregate: items with chronological
// history plus notes. Stable child ordering keeps reads deterministic.
func (r *GormOrderRepository) withAggregate(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		Preload("Items.History", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at")
		}).
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		})
}

func collect(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
