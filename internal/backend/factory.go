package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budgetapp/internal/amqp"
	"budgetapp/internal/repository/memory"
	"budgetapp/internal/repository/mongodb"
	"budgetapp/internal/repository/sqlite"
)

const defaultConnectTimeout = 10 * time.Second

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		result *BackendResult
		err    error
	)
	switch config.Type {
	case MongoBackend:
		result, err = f.createMongoBackend(ctx, config)
	case SQLiteBackend:
		result, err = f.createSQLiteBackend(config)
	case MemoryBackend:
		result = f.createMemoryBackend()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
	if err != nil {
		return nil, err
	}

	f.attachPublisher(result, config)
	return result, nil
}

func (f *DefaultFactory) createMongoBackend(ctx context.Context, config Config) (*BackendResult, error) {
	timeout := config.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongodb.Connect(connectCtx, config.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB repository: %w", err)
	}

	database := mongodb.DatabaseName(config.MongoURI, config.MongoDatabase)
	repo := mongodb.NewRepository(mongodb.NewMongoProvider(client, database))

	f.logger.Info("Initialized MongoDB backend", "database", database, "collection", mongodb.CollectionName)

	return &BackendResult{
		Repository: repo,
		Cleanup: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			return client.Disconnect(ctx)
		},
	}, nil
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*BackendResult, error) {
	repo, err := sqlite.NewRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)

	return &BackendResult{
		Repository: repo,
		Cleanup:    repo.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend() *BackendResult {
	f.logger.Info("Initialized memory backend")

	return &BackendResult{
		Repository: memory.New(),
		Cleanup:    func() error { return nil },
	}
}

// attachPublisher connects to AMQP when configured. A broker that cannot be
// reached only disables events.
func (f *DefaultFactory) attachPublisher(result *BackendResult, config Config) {
	if config.AMQPURL == "" {
		return
	}

	client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
	if err != nil {
		f.logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		return
	}

	f.logger.Info("Initialized AMQP client",
		"exchange", config.AMQPExchange,
		"queue", config.AMQPQueue)

	storeCleanup := result.Cleanup
	result.Publisher = client
	result.Cleanup = func() error {
		return errors.Join(client.Close(), storeCleanup())
	}
}
