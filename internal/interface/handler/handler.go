package handler

import (
	"context"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/pkg/logger"
)

// ScheduleProvider is the subset of the schedule use case the HTTP layer needs
type ScheduleProvider interface {
	ListRoutes(ctx context.Context) ([]entity.RouteSummary, error)
	GetRouteDefinition(ctx context.Context, id string) (entity.RouteDefinition, error)
	GetSchedule(ctx context.Context, id string) (*entity.ScheduleResult, error)
	GetScheduleAt(ctx context.Context, id string, nowMinutes int) (*entity.ScheduleResult, error)
}

// Handler serves the ferry schedule API
type Handler struct {
	schedules ScheduleProvider
	logger    logger.Logger
}

// NewHandler creates a new API handler
func NewHandler(schedules ScheduleProvider, logger logger.Logger) *Handler {
	return &Handler{
		schedules: schedules,
		logger:    logger,
	}
}
