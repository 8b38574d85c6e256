package cmd

import (
	"fmt"
	"log/slog"
	"time"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/integration"
	pgadapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *pgadapter.GormUnitOfWorkFactory
	orders     *integration.OrdersClient
	identity   *integration.IdentityClient
	window     *services.DeliveryWindow
	jobManager *jobs.JobManager
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	orders := integration.NewOrdersClient(integration.Config{
		BaseURL: configs.OrdersServiceURL,
		Timeout: configs.GatewayTimeout,
	}, logger)
	identity := integration.NewIdentityClient(integration.Config{
		BaseURL: configs.AuthServiceURL,
		Timeout: configs.GatewayTimeout,
	}, logger)

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: pgadapter.NewGormUnitOfWorkFactory(gormDB),
		orders:     orders,
		identity:   identity,
		window:     services.NewDeliveryWindow(time.Now, configs.Location()),
		jobManager: jobs.NewJobManager(configs.ProbeSchedule, configs.GatewayTimeout, logger, orders, identity),
		logger:     logger,
	}
}

// OpenDatabase connects gorm to PostgreSQL with SQL logging at Warn.
func OpenDatabase(configs Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if configs.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(configs.DBMaxOpenConns)
	}
	return db, nil
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() *commands.CreateRouteCommandHandler {
	h := commands.NewCreateRouteCommandHandler(c.routeUoWFactory(), c.orders, c.window, c.logger)
	return &h
}

func (c *CompositionRoot) CreateDeleteAllRoutesCommandHandler() *commands.DeleteAllRoutesCommandHandler {
	h := commands.NewDeleteAllRoutesCommandHandler(c.routeUoWFactory(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateListRoutesQueryHandler() queries.ListRoutesQueryHandler {
	return queries.NewListRoutesQueryHandler(c.uowFactory.Create().RouteRepository())
}

func (c *CompositionRoot) CreateGetRouteWithClientsQueryHandler() queries.GetRouteWithClientsQueryHandler {
	return queries.NewGetRouteWithClientsQueryHandler(
		c.uowFactory.Create().RouteRepository(),
		c.orders,
		c.identity,
		c.logger,
	)
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateRouteCommandHandler(),
		c.CreateDeleteAllRoutesCommandHandler(),
		c.CreateListRoutesQueryHandler(),
		c.CreateGetRouteWithClientsQueryHandler(),
		c.jobManager,
		c.logger,
	)
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}
