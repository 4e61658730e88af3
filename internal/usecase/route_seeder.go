package usecase

import (
	"context"
	"fmt"
	"time"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/internal/domain/repository"
	"ferry-schedule-service/pkg/logger"
)

// DefaultRoutes returns the built-in seed routes
func DefaultRoutes() []*entity.Route {
	return []*entity.Route{
		{
			Name:                  "Rishra → Khardaha",
			FromCity:              "Rishra",
			ToCity:                "Khardaha",
			Code:                  "rishra-khardaha",
			FirstDepartureMinutes: entity.IntPtr(5 * 60),
			LastDepartureMinutes:  entity.IntPtr(22*60 + 20),
			IntervalMinutes:       entity.IntPtr(20),
		},
		{
			Name:                  "Konnagar → Sodepur",
			FromCity:              "Konnagar",
			ToCity:                "Sodepur",
			Code:                  "konnagar-sodepur",
			FirstDepartureMinutes: entity.IntPtr(5 * 60),
			LastDepartureMinutes:  entity.IntPtr(22*60 + 20),
			IntervalMinutes:       entity.IntPtr(10),
		},
	}
}

// RouteSource produces the routes used to seed an empty store
type RouteSource func(ctx context.Context) ([]*entity.Route, error)

// RouteSeeder populates the route store on startup when it is empty
type RouteSeeder struct {
	routeRepo repository.RouteRepository
	source    RouteSource
	logger    logger.Logger
}

// NewRouteSeeder creates a new seeder. A nil source seeds DefaultRoutes.
func NewRouteSeeder(routeRepo repository.RouteRepository, source RouteSource, logger logger.Logger) *RouteSeeder {
	if source == nil {
		source = func(context.Context) ([]*entity.Route, error) {
			return DefaultRoutes(), nil
		}
	}
	return &RouteSeeder{
		routeRepo: routeRepo,
		source:    source,
		logger:    logger,
	}
}

// SeedIfEmpty inserts the seed routes when the store has none and returns how many were inserted
func (s *RouteSeeder) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := s.routeRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count routes: %w", err)
	}
	if count > 0 {
		s.logger.Debug("Route store already populated", "count", count)
		return 0, nil
	}

	routes, err := s.source(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load seed routes: %w", err)
	}
	if len(routes) == 0 {
		s.logger.Warn("No seed routes available, store left empty")
		return 0, nil
	}

	now := time.Now()
	for _, r := range routes {
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
	}

	s.logger.Info("Seeding initial routes", "count", len(routes))
	if err := s.routeRepo.InsertMany(ctx, routes); err != nil {
		return 0, fmt.Errorf("failed to insert seed routes: %w", err)
	}

	return len(routes), nil
}
