package commands

import (
	"context"

	"printflow/internal/core/domain/model/printshop"
)

// CreatePrintshopCommandHandler handles printshop registration.
type CreatePrintshopCommandHandler struct {
	uowFactory PrintshopUoWFactory
}

// NewCreatePrintshopCommandHandler creates a handler for printshop registration.
func NewCreatePrintshopCommandHandler(uowFactory PrintshopUoWFactory) CreatePrintshopCommandHandler {
	return CreatePrintshopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the printshop registration command.
func (h *CreatePrintshopCommandHandler) Handle(ctx context.Context, cmd CreatePrintshopCommand) error {
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

	shop, err := printshop.NewPrintshop(
		cmd.ShopID(),
		cmd.Name(),
		cmd.Address(),
		cmd.Location(),
	)
	if err != nil {
		return err
	}

	shopRepo := uow.PrintshopRepository()
	if err = shopRepo.Add(ctx, shop); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
