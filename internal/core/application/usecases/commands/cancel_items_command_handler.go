package commands

import (
	"context"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
)

// CancelItemResult reports the outcome for one item of a bulk cancellation.
// Err carries the item's typed failure (Forbidden, TerminalState, NotFound);
// Changed is false when the item already was canceled.
type CancelItemResult struct {
	ItemID  kernel.UUID
	Changed bool
	Err     error
}

// CancelItemsCommandHandler handles bulk item cancellation. Each item runs
// in its own transaction so a rejected item never rolls back the rest of
// the batch.
type CancelItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelItemsCommandHandler creates a handler for bulk cancellation.
func NewCancelItemsCommandHandler(uowFactory OrderUoWFactory) CancelItemsCommandHandler {
	return CancelItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk cancellation. The returned error covers only
// malformed commands; business failures are reported per item.
func (h *CancelItemsCommandHandler) Handle(
	ctx context.Context,
	cmd CancelItemsCommand,
) ([]CancelItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	results := make([]CancelItemResult, 0, len(cmd.ItemIDs()))
	for _, itemID := range cmd.ItemIDs() {
		changed, err := h.cancelOne(ctx, itemID, cmd)
		results = append(results, CancelItemResult{
			ItemID:  itemID,
			Changed: changed,
			Err:     err,
		})
	}

	return results, nil
}

func (h *CancelItemsCommandHandler) cancelOne(
	ctx context.Context,
	itemID kernel.UUID,
	cmd CancelItemsCommand,
) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByItemID(ctx, itemID)
	if err != nil {
		return false, err
	}

	item, err := aggregate.Item(itemID)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	changed, err := item.ChangeStatus(order.Canceled, cmd.User().Role(), cmd.ChangedBy(), "", now)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	aggregate.Touch(now)
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
