package commands

import (
	"context"
	"time"
)

// SetItemPrintshopCommandHandler handles printshop (re)assignment for line
// items. Verifies the target shop exists before mutating the order, so the
// two repositories share one transaction.
type SetItemPrintshopCommandHandler struct {
	uowFactory UoWFactory
}

// NewSetItemPrintshopCommandHandler creates a handler for item printshop
// assignment. Requires a UoWFactory for transactional access to orders and
// printshops.
func NewSetItemPrintshopCommandHandler(uowFactory UoWFactory) SetItemPrintshopCommandHandler {
	return SetItemPrintshopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. Assigning the shop the item
// already has is a no-op success, reported through Changed.
func (h *SetItemPrintshopCommandHandler) Handle(
	ctx context.Context,
	cmd SetItemPrintshopCommand,
) (SetItemStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return SetItemStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SetItemStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if shopID := cmd.ShopID(); shopID != nil {
		shopRepo := uow.PrintshopRepository()
		if _, err := shopRepo.Get(ctx, *shopID); err != nil {
			return SetItemStatusResult{}, err
		}
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return SetItemStatusResult{}, err
	}

	item, err := aggregate.Item(cmd.ItemID())
	if err != nil {
		return SetItemStatusResult{}, err
	}

	now := time.Now().UTC()
	changed, err := item.AssignPrintshop(cmd.ShopID(), cmd.ChangedBy(), now)
	if err != nil {
		return SetItemStatusResult{}, err
	}
	if !changed {
		return SetItemStatusResult{Changed: false}, nil
	}

	aggregate.Touch(now)
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return SetItemStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SetItemStatusResult{}, err
	}

	return SetItemStatusResult{Changed: true}, nil
}
