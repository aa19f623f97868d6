package commands

import (
	"context"
	"time"
)

// SetItemStatusResult reports the outcome of a status change.
// Changed is false when the item already was in the requested status;
// that is a success, not an error, and nothing was persisted.
type SetItemStatusResult struct {
	Changed bool
}

// SetItemStatusCommandHandler handles the business logic for item status
// changes. Loads the owning order aggregate so the history append, status
// update and cascade timestamps persist as a single unit.
//
// Example:
//
//	handler := NewSetItemStatusCommandHandler(uowFactory)
//	cmd, _ := NewSetItemStatusCommand(itemID, order.InProduction, user, "kim", "")
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type SetItemStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetItemStatusCommandHandler creates a handler for item status changes.
// Requires an OrderUoWFactory for transactional persistence.
func NewSetItemStatusCommandHandler(uowFactory OrderUoWFactory) SetItemStatusCommandHandler {
	return SetItemStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns typed business failures: ForbiddenError when the role lacks the
// target status, TerminalStateError when the item is already settled, and
// ObjectNotFoundError for an unknown item id.
func (h *SetItemStatusCommandHandler) Handle(
	ctx context.Context,
	cmd SetItemStatusCommand,
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
	changed, err := item.ChangeStatus(cmd.Status(), cmd.User().Role(), cmd.ChangedBy(), cmd.Note(), now)
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
