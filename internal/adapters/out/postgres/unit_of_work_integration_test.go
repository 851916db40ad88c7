package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies the GORM unit of work and every
// repository against a real PostgreSQL instance.
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
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgresadapter.Migrate(db))

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE locations, vendors, orders, order_status_updates, agents, agent_performance, notifications",
	).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newLocation(id location.ID, parentID *location.ID) *location.Location {
	l, err := location.NewLocation(id, string(id), location.TypeCity, parentID, nil)
	suite.Require().NoError(err)
	return l
}

func (suite *UnitOfWorkIntegrationTestSuite) newVendor(locationIDs ...location.ID) *vendor.Vendor {
	v, err := vendor.NewVendor(kernel.NewUUID(), "Harvest Lane Market", locationIDs, 15, vendor.Contact{
		Email: "orders@harvestlane.example",
	})
	suite.Require().NoError(err)
	return v
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(vendorID kernel.UUID, locationID location.ID) *order.Order {
	item, err := order.NewLineItem("p-301", "Oat Milk", 3.25, 4)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Sam Okafor",
		vendorID, locationID, []order.LineItem{item}, "card", "7 Cannon St")
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) newAgent() *agent.Agent {
	a, err := agent.NewAgent(kernel.NewUUID(), "Lena Fischer", "+49-30-5550-172",
		[]location.ID{"de-ber-mitte"})
	suite.Require().NoError(err)
	return a
}

func (suite *UnitOfWorkIntegrationTestSuite) begin() (context.Context, ports.UnitOfWork) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	return ctx, uow
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsAcrossRepositories() {
	ctx, uow := suite.begin()

	l := suite.newLocation("de-ber", nil)
	v := suite.newVendor("de-ber")
	o := suite.newOrder(v.ID(), "de-ber")

	suite.Require().NoError(uow.LocationRepository().Add(ctx, l))
	suite.Require().NoError(uow.VendorRepository().Add(ctx, v))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	got, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.Equal(13.0, got.TotalAmount())
	suite.Len(got.StatusHistory(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsWrites() {
	ctx, uow := suite.begin()

	suite.Require().NoError(uow.LocationRepository().Add(ctx, suite.newLocation("de-ber", nil)))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	_, err := check.LocationRepository().Get(ctx, "de-ber")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLocationHierarchyRoundTrip() {
	ctx, uow := suite.begin()

	root := suite.newLocation("de", nil)
	child := suite.newLocation("de-ber", ptrID("de"))
	suite.Require().NoError(child.SetStats(3, 12, 410.5))

	suite.Require().NoError(uow.LocationRepository().Add(ctx, root))
	suite.Require().NoError(uow.LocationRepository().Add(ctx, child))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	all, err := check.LocationRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(location.ID("de"), all[0].ID())

	got, err := check.LocationRepository().Get(ctx, "de-ber")
	suite.Require().NoError(err)
	suite.Require().NotNil(got.ParentID())
	suite.Equal(location.ID("de"), *got.ParentID())
	suite.Equal(3, got.VendorCount())
	suite.Equal(12, got.OrdersCount())
	suite.Equal(410.5, got.Revenue())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestVendorGetByLocation() {
	ctx, uow := suite.begin()

	serving := suite.newVendor("de-ber", "de-muc")
	elsewhere := suite.newVendor("uk-ldn")
	suite.Require().NoError(uow.VendorRepository().Add(ctx, serving))
	suite.Require().NoError(uow.VendorRepository().Add(ctx, elsewhere))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	vendors, err := check.VendorRepository().GetByLocation(ctx, "de-muc")
	suite.Require().NoError(err)
	suite.Require().Len(vendors, 1)
	suite.True(vendors[0].IsEqual(serving))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestVendorDelete() {
	ctx, uow := suite.begin()
	v := suite.newVendor("de-ber")
	suite.Require().NoError(uow.VendorRepository().Add(ctx, v))
	suite.Require().NoError(uow.Commit(ctx))

	ctx, uow = suite.begin()
	suite.Require().NoError(uow.VendorRepository().Delete(ctx, v.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	_, err := check.VendorRepository().Get(ctx, v.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderLedgerAppendsOnUpdate() {
	ctx, uow := suite.begin()
	o := suite.newOrder(kernel.NewUUID(), "de-ber")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(o.TransitionTo(order.StatusConfirmed, "ops", "stock checked"))
	suite.Require().NoError(o.TransitionTo(order.StatusProcessing, "ops", ""))

	ctx, uow = suite.begin()
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	got, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusProcessing, got.Status())
	suite.Require().Len(got.StatusHistory(), 3)
	suite.Equal(order.StatusNew, got.StatusHistory()[0].Status())
	suite.Equal("stock checked", got.StatusHistory()[1].Note())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderFiltersAndOpenCount() {
	ctx, uow := suite.begin()

	vendorID := kernel.NewUUID()
	open := suite.newOrder(vendorID, "de-ber")
	cancelled := suite.newOrder(vendorID, "de-muc")
	suite.Require().NoError(cancelled.TransitionTo(order.StatusCancelled, "ops", "customer request"))
	other := suite.newOrder(kernel.NewUUID(), "de-ber")

	suite.Require().NoError(uow.OrderRepository().Add(ctx, open))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, cancelled))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, other))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()

	status := order.StatusNew
	locationID := location.ID("de-ber")
	orders, err := check.OrderRepository().GetAll(ctx, ports.OrderFilter{
		Status:     &status,
		VendorID:   &vendorID,
		LocationID: &locationID,
	})
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].IsEqual(open))

	count, err := check.OrderRepository().CountOpenByVendor(ctx, vendorID)
	suite.Require().NoError(err)
	suite.Equal(1, count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAgentDeliveryStateRoundTrip() {
	ctx, uow := suite.begin()

	a := suite.newAgent()
	orderID := kernel.NewUUID()
	suite.Require().NoError(a.StartDelivery(orderID))
	suite.Require().NoError(uow.AgentRepository().Add(ctx, a))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	got, err := check.AgentRepository().Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(agent.StatusOnDelivery, got.Status())
	suite.Require().NotNil(got.CurrentOrderID())
	suite.Equal(orderID, *got.CurrentOrderID())

	suite.Require().NoError(got.FinishDelivery(4.2))
	ctx, uow = suite.begin()
	suite.Require().NoError(uow.AgentRepository().Update(ctx, got))
	suite.Require().NoError(uow.Commit(ctx))

	check = suite.factory.Create()
	idle, err := check.AgentRepository().Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(agent.StatusAvailable, idle.Status())
	suite.Nil(idle.CurrentOrderID())
	suite.Equal(1, idle.TotalDeliveries())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPerformanceUpsert() {
	ctx, uow := suite.begin()

	agentID := kernel.NewUUID()
	day := agent.Day(time.Now())
	record, err := agent.NewPerformanceRecord(agentID, day)
	suite.Require().NoError(err)
	suite.Require().NoError(record.RecordDelivery(3.0))
	suite.Require().NoError(uow.PerformanceRepository().Save(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(record.RecordDelivery(2.5))
	ctx, uow = suite.begin()
	suite.Require().NoError(uow.PerformanceRepository().Save(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	got, err := check.PerformanceRepository().GetByAgentDay(ctx, agentID, day)
	suite.Require().NoError(err)
	suite.Equal(2, got.CompletedOrders())
	suite.Equal(5.5, got.Earnings())

	history, err := check.PerformanceRepository().GetByAgent(ctx, agentID)
	suite.Require().NoError(err)
	suite.Len(history, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestNotificationPurge() {
	ctx, uow := suite.begin()

	agentID := kernel.NewUUID()
	read, err := notification.NewNotification(agentID, kernel.NewUUID(),
		notification.TypeAssignment, "New delivery assigned")
	suite.Require().NoError(err)
	read.MarkRead()
	unread, err := notification.NewNotification(agentID, kernel.NewUUID(),
		notification.TypeAssignment, "New delivery assigned")
	suite.Require().NoError(err)

	suite.Require().NoError(uow.NotificationRepository().Add(ctx, read))
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, unread))
	suite.Require().NoError(uow.NotificationRepository().Update(ctx, read))
	suite.Require().NoError(uow.Commit(ctx))

	ctx, uow = suite.begin()
	purged, err := uow.NotificationRepository().DeletePurgeable(ctx, time.Now().Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal(1, purged)

	check := suite.factory.Create()
	remaining, err := check.NotificationRepository().GetByAgent(ctx, agentID)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.True(remaining[0].IsEqual(unread))

	got, err := check.NotificationRepository().Get(ctx, unread.ID())
	suite.Require().NoError(err)
	suite.False(got.Read())

	_, err = check.NotificationRepository().Get(ctx, read.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func ptrID(id location.ID) *location.ID { return &id }

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
