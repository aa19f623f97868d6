package order

import (
	"errors"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrItemBelongsToAnotherOrder is returned when adding an item whose
	// order back-reference points elsewhere.
	ErrItemBelongsToAnotherOrder = errors.New("item references another order")
)

// Order is the print-order aggregate root. It owns its line items and
// notes, references (never owns) a customer, and carries the delivery and
// payment fields.
//
// Order follows these invariants:
//   - must have a valid unique identifier and customer reference
//   - owns at least zero items; every item back-references this order
//   - the aggregate status is never stored: it is derived from the items
//     on every read
//   - version supports optimistic locking; persistence refuses writes
//     whose version no longer matches the stored row
type Order struct {
	id             kernel.UUID
	externalID     *string
	customerID     kernel.UUID
	deliveryMethod DeliveryMethod
	paymentStatus  PaymentStatus
	paymentMethod  string
	amountTotal    decimal.Decimal
	amountPaid     decimal.Decimal
	source         string

	items []*Item
	notes []Note

	version   int
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order at intake. The order starts unpaid, with no
// items; add line items with AddItem. externalID is an optional display
// code shown instead of the UUID.
func NewOrder(
	id kernel.UUID,
	externalID *string,
	customerID kernel.UUID,
	deliveryMethod DeliveryMethod,
	amountTotal decimal.Decimal,
	source string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		paymentStatus: Unpaid,
		amountPaid:    decimal.Zero,
		version:       1,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDeliveryMethod(deliveryMethod),
		o.setAmountTotal(amountTotal),
	); err != nil {
		return nil, err
	}

	o.externalID = copyStringPtr(externalID)
	o.source = source

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state.
func RestoreOrder(
	id kernel.UUID,
	externalID *string,
	customerID kernel.UUID,
	deliveryMethod DeliveryMethod,
	paymentStatus PaymentStatus,
	paymentMethod string,
	amountTotal decimal.Decimal,
	amountPaid decimal.Decimal,
	source string,
	items []*Item,
	notes []Note,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		paymentMethod: paymentMethod,
		amountPaid:    amountPaid,
		source:        source,
		notes:         append([]Note(nil), notes...),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDeliveryMethod(deliveryMethod),
		o.setAmountTotal(amountTotal),
		o.setPaymentStatus(paymentStatus),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	o.externalID = copyStringPtr(externalID)

	for _, item := range items {
		if err := o.AddItem(item); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ExternalID returns the optional display code, or nil.
func (o *Order) ExternalID() *string {
	return copyStringPtr(o.externalID)
}

// CustomerID returns the referenced customer's id.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryMethod returns how the customer receives the order.
func (o *Order) DeliveryMethod() DeliveryMethod {
	return o.deliveryMethod
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentMethod returns the payment method as recorded at intake or via
// SetPaymentMethod; empty when not yet known.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// AmountTotal returns the order total.
func (o *Order) AmountTotal() decimal.Decimal {
	return o.amountTotal
}

// AmountPaid returns the amount received so far.
func (o *Order) AmountPaid() decimal.Decimal {
	return o.amountPaid
}

// Source returns the channel the order originated from.
func (o *Order) Source() string {
	return o.source
}

// Items returns the order's line items. The slice is a copy; the items it
// points to are the aggregate's own entities.
func (o *Order) Items() []*Item {
	return append([]*Item(nil), o.items...)
}

// Item returns the line item with the given id, or an ObjectNotFoundError.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemId", itemID.String())
}

// Notes returns a copy of the order's notes.
func (o *Order) Notes() []Note {
	return append([]Note(nil), o.notes...)
}

// Version returns the optimistic-locking version loaded from persistence.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AddItem attaches a line item to the order. The item must back-reference
// this order's id.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.OrderID().IsEqual(o.id) {
		return ErrItemBelongsToAnotherOrder
	}

	o.items = append(o.items, item)
	return nil
}

// AddNote attaches a note to the order. If the note references an item,
// the item must belong to this order.
func (o *Order) AddNote(note Note) error {
	if err := note.Validate(); err != nil {
		return err
	}
	if itemID := note.ItemID(); itemID != nil {
		if _, err := o.Item(*itemID); err != nil {
			return err
		}
	}

	o.notes = append(o.notes, note)
	return nil
}

// SetPaymentStatus updates the payment status. Plain field update, no
// cascade into items.
func (o *Order) SetPaymentStatus(status PaymentStatus, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.setPaymentStatus(status); err != nil {
		return err
	}

	o.updatedAt = at
	return nil
}

// SetPaymentMethod updates the payment method. Plain field update, no
// cascade into items.
func (o *Order) SetPaymentMethod(method string, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if method == "" {
		return errs.NewValueIsRequiredError("payment method")
	}

	o.paymentMethod = method
	o.updatedAt = at
	return nil
}

// Touch stamps updatedAt after an item-level mutation so the aggregate's
// timestamp tracks its latest change.
func (o *Order) Touch(at time.Time) {
	o.updatedAt = at
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDeliveryMethod(method DeliveryMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.deliveryMethod = method
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func (o *Order) setAmountTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidError("amount total")
	}
	o.amountTotal = total
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("order version")
	}
	o.version = version
	return nil
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
