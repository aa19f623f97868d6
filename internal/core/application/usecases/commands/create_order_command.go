package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("an order needs at least one line item")
	ErrAmountTotalIsNegative = errors.New("amount total must not be negative")
)

// ItemInput carries the line-item data for order intake. Validation of the
// business rules (quantity bounds, product name) happens when the domain
// item is constructed by the handler.
type ItemInput struct {
	ID          kernel.UUID
	ProductName string
	Description string
	Quantity    int
	Specs       map[string]string
}

// CreateOrderCommand represents a request to register a new print order with
// its line items. Every item starts in status new with no printshop assigned.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), nil, customerID, order.MethodDelivery,
//	    decimal.NewFromInt(250), "web",
//	    []ItemInput{{ID: kernel.NewUUID(), ProductName: "flyers", Quantity: 500}},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	externalID     *string
	customerID     kernel.UUID
	deliveryMethod order.DeliveryMethod
	amountTotal    decimal.Decimal
	source         string
	items          []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new print order.
// Validates ids, delivery method, a non-negative total and at least one item.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	externalID *string,
	customerID kernel.UUID,
	deliveryMethod order.DeliveryMethod,
	amountTotal decimal.Decimal,
	source string,
	items []ItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		externalID: externalID,
		source:     source,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setDeliveryMethod(deliveryMethod),
		cmd.setAmountTotal(amountTotal),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ExternalID returns the optional display code for the order.
func (c CreateOrderCommand) ExternalID() *string {
	return c.externalID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryMethod returns how the order reaches the customer.
func (c CreateOrderCommand) DeliveryMethod() order.DeliveryMethod {
	return c.deliveryMethod
}

// AmountTotal returns the order's total price.
func (c CreateOrderCommand) AmountTotal() decimal.Decimal {
	return c.amountTotal
}

// Source returns the channel the order came from.
func (c CreateOrderCommand) Source() string {
	return c.source
}

// Items returns the line-item inputs.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDeliveryMethod(method order.DeliveryMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.deliveryMethod = method
	return nil
}

func (c *CreateOrderCommand) setAmountTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return ErrAmountTotalIsNegative
	}
	c.amountTotal = total
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	c.items = append([]ItemInput(nil), items...)
	return nil
}
