package cmd

import (
	"marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/memstore"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/seed"

	"log/slog"
	"time"

	"gorm.io/gorm"
)

// CompositionRoot wires the storage backend into every handler the process
// needs. The readSide unit of work is never begun; its repositories serve the
// query handlers outside any transaction.
type CompositionRoot struct {
	config     Config
	uowFactory ports.UnitOfWorkFactory
	readSide   ports.UnitOfWork
}

// NewCompositionRoot builds the object graph for the configured backend.
// gormDB must be non-nil when the backend is postgres and is ignored otherwise.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	var factory ports.UnitOfWorkFactory
	if config.StoreBackend == "postgres" {
		factory = postgres.NewGormUnitOfWorkFactory(gormDB)
	} else {
		factory = memstore.NewUnitOfWorkFactory(memstore.NewStore())
	}

	return CompositionRoot{
		config:     config,
		uowFactory: factory,
		readSide:   factory.Create(),
	}
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	return commands.NewCreateLocationCommandHandler(commands.NewLocationUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateCreateVendorCommandHandler() commands.CreateVendorCommandHandler {
	return commands.NewCreateVendorCommandHandler(commands.NewVendorUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateUpdateVendorCommandHandler() commands.UpdateVendorCommandHandler {
	return commands.NewUpdateVendorCommandHandler(commands.NewVendorUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateDeleteVendorCommandHandler() commands.DeleteVendorCommandHandler {
	return commands.NewDeleteVendorCommandHandler(commands.NewVendorUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(commands.NewOrderUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(commands.NewOrderUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(commands.NewDeliveryUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateCreateAgentCommandHandler() commands.CreateAgentCommandHandler {
	return commands.NewCreateAgentCommandHandler(commands.NewAgentUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateDeleteAgentCommandHandler() commands.DeleteAgentCommandHandler {
	return commands.NewDeleteAgentCommandHandler(commands.NewAgentUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	return commands.NewAssignAgentCommandHandler(commands.NewDispatchUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateRefreshLocationStatsCommandHandler() commands.RefreshLocationStatsCommandHandler {
	return commands.NewRefreshLocationStatsCommandHandler(commands.NewStatsUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(commands.NewNotificationUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreatePurgeNotificationsCommandHandler() commands.PurgeNotificationsCommandHandler {
	return commands.NewPurgeNotificationsCommandHandler(commands.NewNotificationUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateGetChildLocationsQueryHandler() queries.GetChildLocationsQueryHandler {
	return queries.NewGetChildLocationsQueryHandler(c.readSide.LocationRepository())
}

func (c *CompositionRoot) CreateGetLocationPathQueryHandler() queries.GetLocationPathQueryHandler {
	return queries.NewGetLocationPathQueryHandler(c.readSide.LocationRepository())
}

func (c *CompositionRoot) CreateGetLocationStatsQueryHandler() queries.GetLocationStatsQueryHandler {
	return queries.NewGetLocationStatsQueryHandler(c.readSide.LocationRepository())
}

func (c *CompositionRoot) CreateGetAllVendorsQueryHandler() queries.GetAllVendorsQueryHandler {
	return queries.NewGetAllVendorsQueryHandler(c.readSide.VendorRepository())
}

func (c *CompositionRoot) CreateGetVendorsByLocationQueryHandler() queries.GetVendorsByLocationQueryHandler {
	return queries.NewGetVendorsByLocationQueryHandler(c.readSide.VendorRepository())
}

func (c *CompositionRoot) CreateGetVendorLocationsQueryHandler() queries.GetVendorLocationsQueryHandler {
	return queries.NewGetVendorLocationsQueryHandler(
		c.readSide.VendorRepository(), c.readSide.LocationRepository())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.readSide.OrderRepository())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readSide.OrderRepository())
}

func (c *CompositionRoot) CreateGetAllAgentsQueryHandler() queries.GetAllAgentsQueryHandler {
	return queries.NewGetAllAgentsQueryHandler(c.readSide.AgentRepository())
}

func (c *CompositionRoot) CreateGetAgentPerformanceQueryHandler() queries.GetAgentPerformanceQueryHandler {
	return queries.NewGetAgentPerformanceQueryHandler(
		c.readSide.AgentRepository(), c.readSide.PerformanceRepository())
}

func (c *CompositionRoot) CreateGetAgentNotificationsQueryHandler() queries.GetAgentNotificationsQueryHandler {
	return queries.NewGetAgentNotificationsQueryHandler(
		c.readSide.AgentRepository(), c.readSide.NotificationRepository())
}

// CreateServer assembles the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateCreateLocationCommandHandler(),
		c.CreateCreateVendorCommandHandler(),
		c.CreateUpdateVendorCommandHandler(),
		c.CreateDeleteVendorCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateTransitionOrderStatusCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateCreateAgentCommandHandler(),
		c.CreateDeleteAgentCommandHandler(),
		c.CreateAssignAgentCommandHandler(),
		c.CreateMarkNotificationReadCommandHandler(),
		c.CreateGetChildLocationsQueryHandler(),
		c.CreateGetLocationPathQueryHandler(),
		c.CreateGetLocationStatsQueryHandler(),
		c.CreateGetAllVendorsQueryHandler(),
		c.CreateGetVendorsByLocationQueryHandler(),
		c.CreateGetVendorLocationsQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetAllAgentsQueryHandler(),
		c.CreateGetAgentPerformanceQueryHandler(),
		c.CreateGetAgentNotificationsQueryHandler(),
	)
}

// CreateJobManager assembles the scheduled jobs from configuration.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshLocationStatsCommandHandler(),
		c.CreatePurgeNotificationsCommandHandler(),
		c.config.StatsRefreshSchedule,
		c.config.NotificationCleanupSchedule,
		time.Duration(c.config.NotificationTTLHours)*time.Hour,
		logger,
	)
}

// CreateSeeder assembles the demo data seeder.
func (c *CompositionRoot) CreateSeeder(logger *slog.Logger) *seed.Seeder {
	return seed.NewSeeder(c.uowFactory, logger)
}
