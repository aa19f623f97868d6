package commands

import (
	"errors"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/guard"
)

var (
	ErrSetOrderPaymentStatusCommandIsNotConstructed = errors.New(
		"SetOrderPaymentStatusCommand must be created via NewSetOrderPaymentStatusCommand constructor",
	)
	ErrSetOrderPaymentMethodCommandIsNotConstructed = errors.New(
		"SetOrderPaymentMethodCommand must be created via NewSetOrderPaymentMethodCommand constructor",
	)
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// SetOrderPaymentStatusCommand represents a request to update an order's
// payment status. A plain order-level update; never cascades into items.
type SetOrderPaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewSetOrderPaymentStatusCommand creates a command to update payment status.
func NewSetOrderPaymentStatusCommand(
	orderID kernel.UUID,
	status order.PaymentStatus,
) (SetOrderPaymentStatusCommand, error) {
	cmd := SetOrderPaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return SetOrderPaymentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderPaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderPaymentStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c SetOrderPaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the new payment status.
func (c SetOrderPaymentStatusCommand) Status() order.PaymentStatus {
	return c.status
}

func (c *SetOrderPaymentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SetOrderPaymentStatusCommand) setStatus(status order.PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

// SetOrderPaymentMethodCommand represents a request to record how an order
// is being paid. A plain order-level update; never cascades into items.
type SetOrderPaymentMethodCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	method  string

	guard guard.ConstructorGuard
}

// NewSetOrderPaymentMethodCommand creates a command to update payment method.
func NewSetOrderPaymentMethodCommand(
	orderID kernel.UUID,
	method string,
) (SetOrderPaymentMethodCommand, error) {
	cmd := SetOrderPaymentMethodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
	); err != nil {
		return SetOrderPaymentMethodCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderPaymentMethodCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderPaymentMethodCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c SetOrderPaymentMethodCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the payment method label, e.g. "invoice" or "card".
func (c SetOrderPaymentMethodCommand) Method() string {
	return c.method
}

func (c *SetOrderPaymentMethodCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SetOrderPaymentMethodCommand) setMethod(method string) error {
	if method == "" {
		return ErrPaymentMethodIsRequired
	}
	c.method = method
	return nil
}
