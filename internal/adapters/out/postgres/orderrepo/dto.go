// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The version column carries the optimistic lock.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalID     *string
	CustomerID     uuid.UUID `gorm:"type:uuid;index"`
	DeliveryMethod string
	PaymentStatus  string
	PaymentMethod  string
	AmountTotal    decimal.Decimal `gorm:"type:numeric"`
	AmountPaid     decimal.Decimal `gorm:"type:numeric"`
	Source         string
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID"`
	Notes []NoteDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting line items,
// indexed for the board queries by status and printshop.
type ItemDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	ProductName       string
	Description       string
	Quantity          int
	Specs             map[string]string `gorm:"serializer:json"`
	Status            string            `gorm:"index"`
	PrintshopID       *uuid.UUID        `gorm:"type:uuid;index"`
	DueDate           *time.Time
	ProductionStartAt *time.Time
	ProductionReadyAt *time.Time
	DeliveredAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	History []StatusChangeDTO `gorm:"foreignKey:ItemID"`
}

// TableName specifies the database table name for item rows.
func (ItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO represents one append-only status history entry.
type StatusChangeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID     uuid.UUID `gorm:"type:uuid;index"`
	FromStatus string
	ToStatus   string
	ChangedAt  time.Time
	ChangedBy  string
	Note       string
}

// TableName specifies the database table name for history rows.
func (StatusChangeDTO) TableName() string {
	return "item_status_changes"
}

// NoteDTO represents one order or item note.
type NoteDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index"`
	ItemID     *uuid.UUID `gorm:"type:uuid"`
	Department string
	Author     string
	Text       string
	CreatedAt  time.Time
}

// TableName specifies the database table name for note rows.
func (NoteDTO) TableName() string {
	return "order_notes"
}

// fromDomain converts an order aggregate to its database representation,
// including items, their status history and notes.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(item))
	}

	notes := make([]NoteDTO, 0, len(aggregate.Notes()))
	for _, note := range aggregate.Notes() {
		notes = append(notes, noteFromDomain(aggregate.ID(), note))
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		ExternalID:     aggregate.ExternalID(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		DeliveryMethod: aggregate.DeliveryMethod().String(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		PaymentMethod:  aggregate.PaymentMethod(),
		AmountTotal:    aggregate.AmountTotal(),
		AmountPaid:     aggregate.AmountPaid(),
		Source:         aggregate.Source(),
		Version:        aggregate.Version(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Items:          items,
		Notes:          notes,
	}
}

func itemFromDomain(item *order.Item) ItemDTO {
	var shopID *uuid.UUID
	if id := item.Printshop(); id != nil {
		raw := id.Bytes()
		shopID = &raw
	}

	history := make([]StatusChangeDTO, 0, len(item.History()))
	for _, change := range item.History() {
		history = append(history, StatusChangeDTO{
			ID:         change.ID.Bytes(),
			ItemID:     item.ID().Bytes(),
			FromStatus: change.From.String(),
			ToStatus:   change.To.String(),
			ChangedAt:  change.ChangedAt,
			ChangedBy:  change.ChangedBy,
			Note:       change.Note,
		})
	}

	return ItemDTO{
		ID:                item.ID().Bytes(),
		OrderID:           item.OrderID().Bytes(),
		ProductName:       item.ProductName(),
		Description:       item.Description(),
		Quantity:          item.Quantity(),
		Specs:             item.Specs(),
		Status:            item.Status().String(),
		PrintshopID:       shopID,
		DueDate:           item.DueDate(),
		ProductionStartAt: item.ProductionStartAt(),
		ProductionReadyAt: item.ProductionReadyAt(),
		DeliveredAt:       item.DeliveredAt(),
		CreatedAt:         item.CreatedAt(),
		UpdatedAt:         item.UpdatedAt(),
		History:           history,
	}
}

func noteFromDomain(orderID kernel.UUID, note order.Note) NoteDTO {
	var itemID *uuid.UUID
	if id := note.ItemID(); id != nil {
		raw := id.Bytes()
		itemID = &raw
	}

	return NoteDTO{
		ID:         note.ID().Bytes(),
		OrderID:    orderID.Bytes(),
		ItemID:     itemID,
		Department: note.Department().String(),
		Author:     note.Author(),
		Text:       note.Text(),
		CreatedAt:  note.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate, reconstructing
// items, history and notes via the Restore constructors.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	method, err := order.DeliveryMethodFromString(dto.DeliveryMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	notes := make([]order.Note, 0, len(dto.Notes))
	for _, noteDTO := range dto.Notes {
		note, noteErr := noteToDomain(noteDTO)
		if noteErr != nil {
			return nil, noteErr
		}
		notes = append(notes, note)
	}

	return order.RestoreOrder(
		id,
		dto.ExternalID,
		customerID,
		method,
		paymentStatus,
		dto.PaymentMethod,
		dto.AmountTotal,
		dto.AmountPaid,
		dto.Source,
		items,
		notes,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var shopID *kernel.UUID
	if dto.PrintshopID != nil {
		sID, shopErr := kernel.UUIDFromBytes((*dto.PrintshopID)[:])
		if shopErr != nil {
			return nil, shopErr
		}
		shopID = &sID
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, changeDTO := range dto.History {
		change, changeErr := changeToDomain(changeDTO)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, change)
	}

	return order.RestoreItem(
		id,
		orderID,
		dto.ProductName,
		dto.Description,
		dto.Quantity,
		dto.Specs,
		status,
		shopID,
		dto.DueDate,
		dto.ProductionStartAt,
		dto.ProductionReadyAt,
		dto.DeliveredAt,
		history,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func changeToDomain(dto StatusChangeDTO) (order.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusChange{}, err
	}

	from, err := order.StatusFromString(dto.FromStatus)
	if err != nil {
		return order.StatusChange{}, err
	}

	to, err := order.StatusFromString(dto.ToStatus)
	if err != nil {
		return order.StatusChange{}, err
	}

	return order.StatusChange{
		ID:        id,
		From:      from,
		To:        to,
		ChangedAt: dto.ChangedAt,
		ChangedBy: dto.ChangedBy,
		Note:      dto.Note,
	}, nil
}

func noteToDomain(dto NoteDTO) (order.Note, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Note{}, err
	}

	var itemID *kernel.UUID
	if dto.ItemID != nil {
		iID, itemErr := kernel.UUIDFromBytes((*dto.ItemID)[:])
		if itemErr != nil {
			return order.Note{}, itemErr
		}
		itemID = &iID
	}

	department, err := order.DepartmentFromString(dto.Department)
	if err != nil {
		return order.Note{}, err
	}

	return order.NewNote(id, itemID, department, dto.Author, dto.Text, dto.CreatedAt)
}
