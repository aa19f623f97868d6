package commands_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/customer"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/printshop"
	"printflow/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByPrintshop(ctx context.Context, shopID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetWithItemsDueBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

type MockPrintshopRepository struct{ mock.Mock }

func (m *MockPrintshopRepository) Add(ctx context.Context, s *printshop.Printshop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockPrintshopRepository) Update(ctx context.Context, s *printshop.Printshop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockPrintshopRepository) Get(ctx context.Context, id kernel.UUID) (*printshop.Printshop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*printshop.Printshop), args.Error(1)
}

func (m *MockPrintshopRepository) GetAll(ctx context.Context) ([]*printshop.Printshop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*printshop.Printshop), args.Error(1)
}

// MockUoW satisfies every UoW flavour used by the command handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) PrintshopRepository() ports.PrintshopRepository {
	args := m.Called()
	return args.Get(0).(ports.PrintshopRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockPrintshopUoWFactory struct{ mock.Mock }

func (m *MockPrintshopUoWFactory) Create() commands.PrintshopUoW {
	args := m.Called()
	return args.Get(0).(commands.PrintshopUoW)
}

// Test fixtures shared across handler tests.

var fixtureTime = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func restoreItemInStatus(
	itemID kernel.UUID,
	orderID kernel.UUID,
	status order.Status,
	shopID *kernel.UUID,
) *order.Item {
	item, err := order.RestoreItem(
		itemID, orderID, "flyers", "", 500, nil,
		status, shopID, nil, nil, nil, nil, nil, fixtureTime, fixtureTime)
	if err != nil {
		panic(err)
	}
	return item
}

func restoreOrderWithItems(orderID kernel.UUID, items ...*order.Item) *order.Order {
	aggregate, err := order.RestoreOrder(
		orderID, nil, kernel.NewUUID(), order.MethodDelivery,
		order.Unpaid, "", decimal.NewFromInt(100), decimal.Zero, "web",
		items, nil, 1, fixtureTime, fixtureTime)
	if err != nil {
		panic(err)
	}
	return aggregate
}
