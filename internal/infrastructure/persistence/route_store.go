package persistence

import (
	"context"
	"fmt"

	"ferry-schedule-service/internal/domain/repository"
	"ferry-schedule-service/internal/infrastructure/config"
	routeRepo "ferry-schedule-service/internal/interface/repository"
	"ferry-schedule-service/pkg/logger"
)

// RouteStore is an open route repository together with its connection
type RouteStore struct {
	Routes repository.RouteRepository
	Driver string
	close  func(ctx context.Context) error
}

// OpenRouteStore connects to the store selected by cfg.StoreDriver and prepares its schema
func OpenRouteStore(ctx context.Context, cfg *config.Config, log logger.Logger) (*RouteStore, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		log.Info("Connecting to PostgreSQL")
		db, err := NewPostgresDB(ctx, cfg.PostgresDSN, cfg.StoreTimeout)
		if err != nil {
			return nil, err
		}

		repo := routeRepo.NewGormRouteRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			_ = ClosePostgresDB(db)
			return nil, fmt.Errorf("failed to migrate routes table: %w", err)
		}

		return &RouteStore{
			Routes: repo,
			Driver: cfg.StoreDriver,
			close:  func(context.Context) error { return ClosePostgresDB(db) },
		}, nil

	default:
		log.Info("Connecting to MongoDB", "database", cfg.MongoDB)
		mongoOpts := MongoOptions{
			URI:         cfg.MongoURI,
			Database:    cfg.MongoDB,
			Username:    cfg.MongoUser,
			Password:    cfg.MongoPassword,
			OpTimeout:   cfg.StoreTimeout,
			MaxPoolSize: 20,
		}
		client, err := NewMongoClient(ctx, mongoOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}

		repo := routeRepo.NewMongoRouteRepository(GetDatabase(client, mongoOpts))
		if err := repo.EnsureIndexes(ctx); err != nil {
			// Duplicate codes in legacy documents make the unique index fail.
			log.Warn("Failed to create route indexes", "error", err)
		}

		return &RouteStore{
			Routes: repo,
			Driver: config.StoreMongo,
			close:  client.Disconnect,
		}, nil
	}
}

// Close releases the store connection
func (s *RouteStore) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
