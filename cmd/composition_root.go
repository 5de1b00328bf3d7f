package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	httpin "tradefinance/internal/adapters/in/http"
	"tradefinance/internal/adapters/out/kafka"
	"tradefinance/internal/adapters/out/ledgerstore"
	"tradefinance/internal/adapters/out/memoryledger"
	"tradefinance/internal/adapters/out/postgresledger"
	"tradefinance/internal/adapters/out/redisledger"
	"tradefinance/internal/core/application/usecases/commands"
	"tradefinance/internal/core/application/usecases/queries"
	"tradefinance/internal/core/domain/model/order"
	"tradefinance/internal/core/ports"
	"tradefinance/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config    Config
	ledger    ports.Ledger
	orders    ports.OrderRepository
	publisher ports.EventPublisher
	clock     commands.Clock
}

// NewCompositionRoot wires the storage and messaging adapters chosen by
// the configuration and exposes factories for every use case handler.
func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	ledger, err := createLedger(config)
	if err != nil {
		return nil, err
	}

	var publisher ports.EventPublisher = noopPublisher{}
	if config.KafkaHost != "" {
		publisher = kafka.NewOrderChangedPublisher(
			[]string{config.KafkaHost}, config.KafkaOrderChangedTopic)
	}

	return &CompositionRoot{
		config:    config,
		ledger:    ledger,
		orders:    ledgerstore.NewLedgerOrderRepository(ledger),
		publisher: publisher,
		clock:     time.Now,
	}, nil
}

func createLedger(config Config) (ports.Ledger, error) {
	switch config.StoreDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser,
			config.DBPassword, config.DBName, config.DBSslMode)
		db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}

		ledger := postgresledger.NewPostgresLedger(db)
		if err := ledger.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate ledger schema: %w", err)
		}
		return ledger, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		namespace := config.RedisNamespace
		if namespace == "" {
			namespace = "tradefinance"
		}
		return redisledger.NewRedisLedger(client, namespace), nil

	case "", "memory":
		return memoryledger.NewMemoryLedger(), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", config.StoreDriver)
	}
}

// Close releases adapter resources, flushing the event publisher when a
// broker is configured.
func (c *CompositionRoot) Close() error {
	if closer, ok := c.publisher.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.publisher)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orders, c.publisher)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orders, c.publisher)
}

func (c *CompositionRoot) CreateSignArrivalCommandHandler() commands.SignArrivalCommandHandler {
	return commands.NewSignArrivalCommandHandler(c.orders, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orders, c.publisher)
}

func (c *CompositionRoot) CreateCheckDeliveryDateCommandHandler() commands.CheckDeliveryDateCommandHandler {
	return commands.NewCheckDeliveryDateCommandHandler(c.orders, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.ledger)
}

// CreateServer builds the HTTP surface over all use case handlers.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateConfirmOrderCommandHandler(),
		c.CreateShipOrderCommandHandler(),
		c.CreateSignArrivalCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateCheckDeliveryDateCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
	)
}

// CreateAuthMiddleware builds the bearer token authentication middleware.
func (c *CompositionRoot) CreateAuthMiddleware() echo.MiddlewareFunc {
	return httpin.NewAuthMiddleware([]byte(c.config.JWTSecret))
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateCheckDeliveryDateCommandHandler(),
		logger,
	)
}

// noopPublisher satisfies the event publisher port when no broker is
// configured, for local development against the in-memory store.
type noopPublisher struct{}

func (noopPublisher) PublishOrderChanged(context.Context, *order.Order) error {
	return nil
}
