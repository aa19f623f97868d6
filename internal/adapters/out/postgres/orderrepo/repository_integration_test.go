package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"printflow/internal/adapters/out/postgres/orderrepo"
	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence of the
// full aggregate: items, status history and notes.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StatusChangeDTO{},
		&orderrepo.NoteDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, item_status_changes, order_notes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsItemsAndNotes() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(2)
	noteID := kernel.NewUUID()
	note, err := order.NewNote(noteID, nil, order.DepartmentEveryone, "kim", "rush job", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddNote(note))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err = suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.ItemDTO{}, 2)
	suite.assertCount(&orderrepo.NoteDTO{}, 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RestoresFullAggregate() {
	ctx := context.Background()

	original := suite.createTestOrder(2)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(order.MethodDelivery, retrieved.DeliveryMethod())
	suite.Equal(order.Unpaid, retrieved.PaymentStatus())
	suite.True(original.AmountTotal().Equal(retrieved.AmountTotal()))
	suite.Equal(1, retrieved.Version())
	suite.Len(retrieved.Items(), 2)
	for _, item := range retrieved.Items() {
		suite.Equal(order.New, item.Status())
		suite.Nil(item.Printshop())
		suite.Empty(item.History())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusMutation_PersistsHistoryAndBumpsVersion() {
	ctx := context.Background()

	original := suite.createTestOrder(1)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	item := loaded.Items()[0]
	shopID := kernel.NewUUID()
	changed, err := item.AssignPrintshop(&shopID, "kim", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().True(changed)

	changed, err = item.ChangeStatus(order.InProduction, actor.Manager, "kim", "press run", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().True(changed)

	suite.tracker.On("TrackAggregate", loaded.ID(), loaded).Once()
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(2, retrieved.Version())
	retrievedItem := retrieved.Items()[0]
	suite.Equal(order.InProduction, retrievedItem.Status())
	suite.Require().NotNil(retrievedItem.Printshop())
	suite.Equal(shopID, *retrievedItem.Printshop())
	suite.NotNil(retrievedItem.ProductionStartAt())
	suite.Require().Len(retrievedItem.History(), 2)
	suite.Equal(order.New, retrievedItem.History()[0].From)
	suite.Equal(order.Assigned, retrievedItem.History()[0].To)
	suite.Equal(order.Assigned, retrievedItem.History()[1].From)
	suite.Equal(order.InProduction, retrievedItem.History()[1].To)
	suite.Equal("press run", retrievedItem.History()[1].Note)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflictError() {
	ctx := context.Background()

	original := suite.createTestOrder(1)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	first, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.SetPaymentStatus(order.Paid, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// Second writer still holds version 1, the row now carries version 2.
	suite.Require().NoError(second.SetPaymentStatus(order.Partial, time.Now().UTC()))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, retrieved.PaymentStatus())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	missing := suite.createTestOrder(1)
	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByItemID_ReturnsOwningOrder() {
	ctx := context.Background()

	first := suite.createTestOrder(2)
	second := suite.createTestOrder(1)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	itemID := second.Items()[0].ID()
	retrieved, err := suite.repository.GetByItemID(ctx, itemID)
	suite.Require().NoError(err)
	suite.Equal(second.ID(), retrieved.ID())

	_, err = suite.repository.GetByItemID(ctx, kernel.NewUUID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCustomer_FiltersByCustomer() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	mine := suite.createTestOrderForCustomer(customerID, 1)
	other := suite.createTestOrder(1)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	orders, err := suite.repository.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(mine.ID(), orders[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByPrintshop_FiltersByItemAssignment() {
	ctx := context.Background()

	assigned := suite.createTestOrder(1)
	unassigned := suite.createTestOrder(1)
	shopID := kernel.NewUUID()
	_, err := assigned.Items()[0].AssignPrintshop(&shopID, "kim", time.Now().UTC())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, assigned))
	suite.Require().NoError(suite.repository.Add(ctx, unassigned))

	orders, err := suite.repository.GetByPrintshop(ctx, shopID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(assigned.ID(), orders[0].ID())

	orders, err = suite.repository.GetByPrintshop(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetWithItemsDueBefore_SkipsTerminalItems() {
	ctx := context.Background()

	deadline := time.Now().UTC()
	pastDue := deadline.Add(-48 * time.Hour)

	overdue := suite.createTestOrder(1)
	suite.Require().NoError(overdue.Items()[0].SetDueDate(&pastDue, time.Now().UTC()))

	delivered := suite.createTestOrder(1)
	suite.Require().NoError(delivered.Items()[0].SetDueDate(&pastDue, time.Now().UTC()))
	suite.advanceToDelivered(delivered.Items()[0])

	onTime := suite.createTestOrder(1)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, overdue))
	suite.Require().NoError(suite.repository.Add(ctx, delivered))
	suite.Require().NoError(suite.repository.Add(ctx, onTime))

	orders, err := suite.repository.GetWithItemsDueBefore(ctx, deadline)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(overdue.ID(), orders[0].ID())
}

// advanceToDelivered walks an item through the full delivery path.
func (suite *OrderRepositoryIntegrationTestSuite) advanceToDelivered(item *order.Item) {
	shopID := kernel.NewUUID()
	now := time.Now().UTC()
	_, err := item.AssignPrintshop(&shopID, "kim", now)
	suite.Require().NoError(err)
	for _, status := range []order.Status{order.InProduction, order.Ready, order.OutForDelivery, order.Delivered} {
		_, err = item.ChangeStatus(status, actor.Manager, "kim", "", now)
		suite.Require().NoError(err)
	}
}

// createTestOrder creates a delivery order with the given number of items.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(itemCount int) *order.Order {
	return suite.createTestOrderForCustomer(kernel.NewUUID(), itemCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderForCustomer(
	customerID kernel.UUID, itemCount int,
) *order.Order {
	now := time.Now().UTC()
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		nil,
		customerID,
		order.MethodDelivery,
		decimal.NewFromInt(120),
		"web",
		now,
	)
	suite.Require().NoError(err)

	for i := range itemCount {
		item, itemErr := order.NewItem(
			kernel.NewUUID(),
			testOrder.ID(),
			"business cards",
			"matte, two-sided",
			100+i,
			map[string]string{"paper": "350g"},
			now,
		)
		suite.Require().NoError(itemErr)
		suite.Require().NoError(testOrder.AddItem(item))
	}

	return testOrder
}

// assertCount verifies the number of rows for the given model.
func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int) {
	var count int64
	err := suite.db.Model(model).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
