package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
)

func TestSetItemStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	item := restoreItemInStatus(itemID, orderID, order.Assigned, nil)
	aggregate := restoreOrderWithItems(orderID, item)

	cmd, err := commands.NewSetItemStatusCommand(
		itemID, order.InProduction, actor.NewManager(), "kim", "priority run")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItemID", ctx, itemID).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetItemStatusCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, order.InProduction, item.Status())
	require.NotNil(t, item.ProductionStartAt())
	require.Len(t, item.History(), 1)
	assert.Equal(t, "kim", item.History()[0].ChangedBy)
	assert.Equal(t, "priority run", item.History()[0].Note)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSetItemStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	item := restoreItemInStatus(itemID, orderID, order.Ready, nil)
	aggregate := restoreOrderWithItems(orderID, item)

	cmd, err := commands.NewSetItemStatusCommand(
		itemID, order.Ready, actor.NewManager(), "kim", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItemID", ctx, itemID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetItemStatusCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Empty(t, item.History())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSetItemStatusCommandHandler_Handle_ForbiddenForRole(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	item := restoreItemInStatus(itemID, orderID, order.New, nil)
	aggregate := restoreOrderWithItems(orderID, item)

	// Drivers cannot start production.
	cmd, err := commands.NewSetItemStatusCommand(
		itemID, order.InProduction, actor.NewDriver(), "sam", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItemID", ctx, itemID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetItemStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var forbidden *errs.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, order.New, item.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSetItemStatusCommandHandler_Handle_TerminalItemIsLocked(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	item := restoreItemInStatus(itemID, orderID, order.Delivered, nil)
	aggregate := restoreOrderWithItems(orderID, item)

	cmd, err := commands.NewSetItemStatusCommand(
		itemID, order.OnHold, actor.NewManager(), "kim", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItemID", ctx, itemID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetItemStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var terminal *errs.TerminalStateError
	require.ErrorAs(t, err, &terminal)
	assert.Equal(t, order.Delivered, item.Status())
}

func TestSetItemStatusCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()

	cmd, err := commands.NewSetItemStatusCommand(
		itemID, order.Ready, actor.NewManager(), "kim", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByItemID", ctx, itemID).
			Return(nil, errs.NewObjectNotFoundError("itemId", itemID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetItemStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSetItemStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SetItemStatusCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewSetItemStatusCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSetItemStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
