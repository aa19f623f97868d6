package commands

import (
	"context"
	"time"

	"printflow/internal/core/domain/model/order"
)

// AddOrderNoteCommandHandler handles attaching notes to order aggregates.
type AddOrderNoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderNoteCommandHandler creates a handler for order note creation.
func NewAddOrderNoteCommandHandler(uowFactory OrderUoWFactory) AddOrderNoteCommandHandler {
	return AddOrderNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note command. Item notes must reference an item that
// belongs to the order.
func (h *AddOrderNoteCommandHandler) Handle(ctx context.Context, cmd AddOrderNoteCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	note, err := order.NewNote(
		cmd.NoteID(),
		cmd.ItemID(),
		cmd.Department(),
		cmd.Author(),
		cmd.Text(),
		now,
	)
	if err != nil {
		return err
	}

	if err = aggregate.AddNote(note); err != nil {
		return err
	}

	aggregate.Touch(now)
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
