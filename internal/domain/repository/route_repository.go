package repository

import (
	"context"
	"errors"

	"ferry-schedule-service/internal/domain/entity"
)

// ErrNotFound is returned when no route matches the requested identifier
var ErrNotFound = errors.New("route not found")

// RouteRepository defines the interface for route storage operations
type RouteRepository interface {
	// List returns all routes ordered by fromCity ascending
	List(ctx context.Context) ([]*entity.Route, error)
	FindByID(ctx context.Context, id string) (*entity.Route, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, routes []*entity.Route) error
}
