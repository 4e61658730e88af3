package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormRouteRepository implements the RouteRepository interface on PostgreSQL
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{
		db: db,
	}
}

// FerryRoutes GORM model for database mapping
type FerryRoutes struct {
	gorm.Model
	Name                  string  `gorm:"column:name;not null"`
	Code                  *string `gorm:"column:code;uniqueIndex"`
	FromCity              string  `gorm:"column:from_city;not null;index"`
	ToCity                string  `gorm:"column:to_city;not null"`
	FirstDepartureMinutes *int    `gorm:"column:first_departure_minutes"`
	LastDepartureMinutes  *int    `gorm:"column:last_departure_minutes"`
	IntervalMinutes       *int    `gorm:"column:interval_minutes"`
}

// TableName overrides the default table name
func (FerryRoutes) TableName() string {
	return "ferry_routes"
}

func (m *FerryRoutes) toEntity() *entity.Route {
	route := &entity.Route{
		ID:                    strconv.FormatUint(uint64(m.ID), 10),
		Name:                  m.Name,
		FromCity:              m.FromCity,
		ToCity:                m.ToCity,
		FirstDepartureMinutes: m.FirstDepartureMinutes,
		LastDepartureMinutes:  m.LastDepartureMinutes,
		IntervalMinutes:       m.IntervalMinutes,
		CreatedAt:             m.CreatedAt,
	}
	if m.Code != nil {
		route.Code = *m.Code
	}
	if !m.UpdatedAt.IsZero() {
		updated := m.UpdatedAt
		route.UpdatedAt = &updated
	}
	return route
}

// Migrate creates or updates the ferry_routes table
func (r *GormRouteRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&FerryRoutes{})
}

// List returns all routes sorted by from_city
func (r *GormRouteRepository) List(ctx context.Context) ([]*entity.Route, error) {
	var models []FerryRoutes
	result := r.db.WithContext(ctx).Order("from_city ASC").Order("id ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list routes: %w", result.Error)
	}

	routes := make([]*entity.Route, 0, len(models))
	for i := range models {
		routes = append(routes, models[i].toEntity())
	}
	return routes, nil
}

// FindByID finds a route by numeric id or code
func (r *GormRouteRepository) FindByID(ctx context.Context, id string) (*entity.Route, error) {
	var model FerryRoutes
	query := r.db.WithContext(ctx)
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		query = query.Where("id = ?", n).Or("code = ?", id)
	} else {
		query = query.Where("code = ?", id)
	}

	result := query.First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find route: %w", result.Error)
	}

	return model.toEntity(), nil
}

// Count returns the number of stored routes
func (r *GormRouteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&FerryRoutes{}).Count(&count)
	return count, result.Error
}

// InsertMany stores new routes in one transaction and assigns their IDs
func (r *GormRouteRepository) InsertMany(ctx context.Context, routes []*entity.Route) error {
	if len(routes) == 0 {
		return nil
	}

	models := make([]FerryRoutes, 0, len(routes))
	for _, route := range routes {
		model := FerryRoutes{
			Name:                  route.Name,
			FromCity:              route.FromCity,
			ToCity:                route.ToCity,
			FirstDepartureMinutes: route.FirstDepartureMinutes,
			LastDepartureMinutes:  route.LastDepartureMinutes,
			IntervalMinutes:       route.IntervalMinutes,
		}
		if route.Code != "" {
			code := route.Code
			model.Code = &code
		}
		model.CreatedAt = route.CreatedAt
		models = append(models, model)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&models).Error
	})
	if err != nil {
		return fmt.Errorf("failed to insert routes: %w", err)
	}

	// Update the entities with the generated IDs
	for i := range models {
		routes[i].ID = strconv.FormatUint(uint64(models[i].ID), 10)
		routes[i].CreatedAt = models[i].CreatedAt
	}
	return nil
}

var _ repository.RouteRepository = (*GormRouteRepository)(nil)
