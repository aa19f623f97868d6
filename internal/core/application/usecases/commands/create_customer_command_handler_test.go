package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/customer"
	"printflow/internal/core/domain/model/kernel"
)

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	company := "Acme GmbH"
	cmd, err := commands.NewCreateCustomerCommand(
		customerID, "Jamie Fox", "jamie@acme.test", "+49 30 1234567",
		&company, "Torstrasse 1, Berlin", "prefers email")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	var added *customer.Customer
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*customer.Customer)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCustomerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, customerID, added.ID())
	assert.Equal(t, "Jamie Fox", added.Name())
	require.NotNil(t, added.Company())
	assert.Equal(t, company, *added.Company())
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	handler := commands.NewCreateCustomerCommandHandler(new(MockCustomerUoWFactory))

	err := handler.Handle(t.Context(), commands.CreateCustomerCommand{})

	require.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
}
