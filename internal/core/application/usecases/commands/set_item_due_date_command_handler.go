package commands

import (
	"context"
	"time"
)

// SetItemDueDateCommandHandler handles due date updates for line items.
type SetItemDueDateCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetItemDueDateCommandHandler creates a handler for item due date updates.
func NewSetItemDueDateCommandHandler(uowFactory OrderUoWFactory) SetItemDueDateCommandHandler {
	return SetItemDueDateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the due date command.
func (h *SetItemDueDateCommandHandler) Handle(ctx context.Context, cmd SetItemDueDateCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	item, err := aggregate.Item(cmd.ItemID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = item.SetDueDate(cmd.DueDate(), now); err != nil {
		return err
	}

	aggregate.Touch(now)
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
