package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "printflow/internal/adapters/out/postgres"
	"printflow/internal/adapters/out/postgres/customerrepo"
	"printflow/internal/adapters/out/postgres/orderrepo"
	"printflow/internal/adapters/out/postgres/printshoprepo"
	"printflow/internal/core/domain/model/customer"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/printshop"
	"printflow/internal/core/ports"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StatusChangeDTO{},
		&orderrepo.NoteDTO{},
		&customerrepo.CustomerDTO{},
		&printshoprepo.PrintshopDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, item_status_changes, order_notes, customers, printshops").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow1.PrintshopRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated begin is safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_IntakeWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCustomer := createTestCustomer()
	testShop := createTestPrintshop()
	testOrder := createTestOrder(testCustomer.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	err = uow.PrintshopRepository().Add(ctx, testShop)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Assign the item to the shop within the same transaction
	shopID := testShop.ID()
	changed, err := testOrder.Items()[0].AssignPrintshop(&shopID, "kim", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().True(changed)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	item := retrievedOrder.Items()[0]
	suite.Equal(order.Assigned, item.Status())
	suite.Require().NotNil(item.Printshop())
	suite.Equal(testShop.ID(), *item.Printshop())

	retrievedCustomer, err := newUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.Equal(testCustomer.Name(), retrievedCustomer.Name())

	retrievedShop, err := newUow.PrintshopRepository().Get(ctx, testShop.ID())
	suite.Require().NoError(err)
	suite.Equal(testShop.Name(), retrievedShop.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCustomer := createTestCustomer()
	testOrder := createTestOrder(testCustomer.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Visible inside the transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
	_, err = newUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().Error(err, "Customer should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder(kernel.NewUUID())
	order2 := createTestOrder(kernel.NewUUID())

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(kernel.NewUUID())

	// Without Begin the repositories auto-commit
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// createTestOrder creates a valid one-item delivery order for testing.
func createTestOrder(customerID kernel.UUID) *order.Order {
	now := time.Now().UTC()
	testOrder, _ := order.NewOrder(
		kernel.NewUUID(), nil, customerID, order.MethodDelivery, decimal.NewFromInt(80), "web", now)
	item, _ := order.NewItem(
		kernel.NewUUID(), testOrder.ID(), "poster A1", "", 10, nil, now)
	_ = testOrder.AddItem(item)
	return testOrder
}

// createTestCustomer creates a valid customer for testing.
func createTestCustomer() *customer.Customer {
	testCustomer, _ := customer.NewCustomer(
		kernel.NewUUID(), "Acme Studio", "studio@acme.test", "+1-555-0100", nil, "12 Main St", "")
	return testCustomer
}

// createTestPrintshop creates a valid printshop for testing.
func createTestPrintshop() *printshop.Printshop {
	location, _ := kernel.NewGeoPoint(52.52, 13.405)
	testShop, _ := printshop.NewPrintshop(kernel.NewUUID(), "Central Press", "1 Print Ave", location)
	return testShop
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
