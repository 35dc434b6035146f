package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	httpadapter "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/eventlog"
	"courier/internal/adapters/out/kafka"
	"courier/internal/adapters/out/memory"
	"courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/postgres/shipmentrepo"
	"courier/internal/adapters/out/rabbitmq"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
	"courier/internal/jobs"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	uowFactory ports.UnitOfWorkFactory
	reader     ports.ShipmentReader
	publisher  ports.EventPublisher
	closers    []func() error

	fees       services.FeeCalculator
	statistics services.ShipmentStatistics
	clock      commands.Clock
}

// NewCompositionRoot wires the application for the configured storage.
// gormDB is only used when Storage is postgres.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	fees, err := services.NewFeeCalculator(config.FeeSchedule)
	if err != nil {
		return nil, err
	}
	statistics, err := services.NewShipmentStatistics(config.DelayThreshold)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		config:     config,
		logger:     logger,
		fees:       fees,
		statistics: statistics,
		clock:      time.Now,
	}

	switch config.Storage {
	case StoragePostgres:
		if gormDB == nil {
			return nil, errors.New("postgres storage requires a database connection")
		}
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		root.reader = shipmentrepo.NewGormShipmentRepository(gormDB)
	case StorageMemory:
		store := memory.NewStore()
		root.uowFactory = store
		root.reader = store
	default:
		return nil, fmt.Errorf("unknown storage %q", config.Storage)
	}

	if err = root.initPublisher(); err != nil {
		return nil, err
	}

	return root, nil
}

// initPublisher picks Kafka, then RabbitMQ, and falls back to logging events.
func (c *CompositionRoot) initPublisher() error {
	switch {
	case c.config.KafkaBrokers != "":
		publisher, err := kafka.NewPublisher(c.config.KafkaBrokers, c.config.KafkaTopic)
		if err != nil {
			return err
		}
		c.publisher = publisher
		c.closers = append(c.closers, publisher.Close)
		c.logger.Info("publishing events to kafka", "topic", c.config.KafkaTopic)
	case c.config.RabbitMQURL != "":
		publisher, err := rabbitmq.NewPublisher(c.config.RabbitMQURL, c.config.RabbitMQExchange)
		if err != nil {
			return err
		}
		c.publisher = publisher
		c.closers = append(c.closers, publisher.Close)
		c.logger.Info("publishing events to rabbitmq", "exchange", c.config.RabbitMQExchange)
	default:
		c.publisher = eventlog.NewPublisher(c.logger)
		c.logger.Warn("no broker configured, events are only logged")
	}
	return nil
}

// Close releases broker connections.
func (c *CompositionRoot) Close() error {
	var errList []error
	for _, closeFn := range c.closers {
		errList = append(errList, closeFn())
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.fees, c.clock)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.shipmentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() *commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewRelayOutboxCommandHandler(f, c.publisher, c.clock)
	return &handler
}

func (c *CompositionRoot) CreateCalculateFeeQueryHandler() queries.CalculateFeeQueryHandler {
	return queries.NewCalculateFeeQueryHandler(c.fees)
}

func (c *CompositionRoot) CreateGetShipmentHistoryQueryHandler() queries.GetShipmentHistoryQueryHandler {
	return queries.NewGetShipmentHistoryQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateGetShipmentStatsQueryHandler() queries.GetShipmentStatsQueryHandler {
	return queries.NewGetShipmentStatsQueryHandler(c.reader, c.statistics)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateShipmentCommandHandler(),
		c.CreateUpdateShipmentStatusCommandHandler(),
		c.CreateCalculateFeeQueryHandler(),
		c.CreateGetShipmentHistoryQueryHandler(),
		c.CreateListShipmentsQueryHandler(),
		c.CreateGetShipmentStatsQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpadapter.NewRouter(c.CreateHTTPServer(), []byte(c.config.JWTSecret), c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	relayCommand, err := commands.NewRelayOutboxCommand(c.config.OutboxBatchSize)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(
		c.CreateRelayOutboxCommandHandler(),
		relayCommand,
		c.CreateListShipmentsQueryHandler(),
		c.statistics,
		c.logger,
	), nil
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
