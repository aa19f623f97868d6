package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/customer"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
)

func fixtureCustomer(customerID kernel.UUID) *customer.Customer {
	c, err := customer.NewCustomer(customerID, "Jane Smith", "", "", nil, "", "")
	if err != nil {
		panic(err)
	}
	return c
}

func intakeCommand(t *testing.T, orderID, customerID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, nil, customerID, order.MethodDelivery,
		decimal.NewFromInt(250), "web",
		[]commands.ItemInput{
			{ID: kernel.NewUUID(), ProductName: "flyers", Quantity: 500},
			{ID: kernel.NewUUID(), ProductName: "banner", Quantity: 1},
		})
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	cmd := intakeCommand(t, orderID, customerID)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	var persisted *order.Order

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).Return(fixtureCustomer(customerID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*order.Order)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.True(t, persisted.ID().IsEqual(orderID))
	assert.Equal(t, order.Unpaid, persisted.PaymentStatus())
	require.Len(t, persisted.Items(), 2)
	for _, item := range persisted.Items() {
		assert.Equal(t, order.New, item.Status())
		assert.Nil(t, item.Printshop())
		assert.Empty(t, item.History())
	}
	orderRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd := intakeCommand(t, kernel.NewUUID(), customerID)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("customerId", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestNewCreateOrderCommand_NoItems_ReturnsError(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), nil, kernel.NewUUID(), order.MethodDelivery,
		decimal.NewFromInt(10), "web", nil)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
}

func TestNewCreateOrderCommand_NegativeTotal_ReturnsError(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), nil, kernel.NewUUID(), order.MethodDelivery,
		decimal.NewFromInt(-1), "web",
		[]commands.ItemInput{{ID: kernel.NewUUID(), ProductName: "flyers", Quantity: 1}})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAmountTotalIsNegative)
}
