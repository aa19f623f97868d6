package commands

import (
	"context"
	"time"

	"printflow/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Verifies the customer exists, builds the aggregate with its line items
// and persists it in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, nil, customerID,
//	    order.MethodDelivery, total, "web", items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order intake failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires a UoWFactory for transactional access to orders and customers.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order intake command.
// The customer must exist; all items start in status new.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	if _, err := customerRepo.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ExternalID(),
		cmd.CustomerID(),
		cmd.DeliveryMethod(),
		cmd.AmountTotal(),
		cmd.Source(),
		now,
	)
	if err != nil {
		return err
	}

	for _, input := range cmd.Items() {
		item, itemErr := order.NewItem(
			input.ID,
			cmd.OrderID(),
			input.ProductName,
			input.Description,
			input.Quantity,
			input.Specs,
			now,
		)
		if itemErr != nil {
			return itemErr
		}
		if addErr := aggregate.AddItem(item); addErr != nil {
			return addErr
		}
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
