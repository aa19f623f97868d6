package commands

import (
	"context"
	"time"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
)

// SetOrderPaymentCommandHandler handles payment status and payment method
// updates on order aggregates. Both are plain field updates sharing the
// same load-mutate-persist shape, so one handler serves both commands.
type SetOrderPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderPaymentCommandHandler creates a handler for order payment updates.
func NewSetOrderPaymentCommandHandler(uowFactory OrderUoWFactory) SetOrderPaymentCommandHandler {
	return SetOrderPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleStatus processes a payment status update.
func (h *SetOrderPaymentCommandHandler) HandleStatus(
	ctx context.Context,
	cmd SetOrderPaymentStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutate(ctx, cmd.OrderID(), func(aggregate *order.Order, now time.Time) error {
		return aggregate.SetPaymentStatus(cmd.Status(), now)
	})
}

// HandleMethod processes a payment method update.
func (h *SetOrderPaymentCommandHandler) HandleMethod(
	ctx context.Context,
	cmd SetOrderPaymentMethodCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutate(ctx, cmd.OrderID(), func(aggregate *order.Order, now time.Time) error {
		return aggregate.SetPaymentMethod(cmd.Method(), now)
	})
}

func (h *SetOrderPaymentCommandHandler) mutate(
	ctx context.Context,
	orderID kernel.UUID,
	apply func(aggregate *order.Order, now time.Time) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = apply(aggregate, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
