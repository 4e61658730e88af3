package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/internal/domain/repository"
	"ferry-schedule-service/pkg/logger"
	"ferry-schedule-service/pkg/metrics"
	"ferry-schedule-service/pkg/utils"
)

var (
	// ErrRouteNotFound is returned for an unknown route identifier
	ErrRouteNotFound = errors.New("route not found")
	// ErrStoreUnavailable is returned when the route store cannot be read
	ErrStoreUnavailable = errors.New("route store unavailable")
)

// ScheduleService loads routes from the store and builds their schedules
type ScheduleService struct {
	routeRepo repository.RouteRepository
	location  *time.Location
	now       func() time.Time
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewScheduleService creates a new schedule service. Wall-clock time is read in location.
func NewScheduleService(
	routeRepo repository.RouteRepository,
	location *time.Location,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *ScheduleService {
	if location == nil {
		location = time.Local
	}
	return &ScheduleService{
		routeRepo: routeRepo,
		location:  location,
		now:       time.Now,
		metrics:   metrics,
		logger:    logger,
	}
}

// SetClock replaces the wall clock
func (s *ScheduleService) SetClock(now func() time.Time) {
	s.now = now
}

// NowMinutes returns the current minute of the day in the service location
func (s *ScheduleService) NowMinutes() int {
	return utils.MinutesOfDay(s.now().In(s.location))
}

// ListRoutes returns summaries of all routes ordered by departure city
func (s *ScheduleService) ListRoutes(ctx context.Context) ([]entity.RouteSummary, error) {
	routes, err := s.routeRepo.List(ctx)
	if err != nil {
		s.countError("list_routes")
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	summaries := make([]entity.RouteSummary, 0, len(routes))
	for _, r := range routes {
		summaries = append(summaries, entity.RouteSummary{
			ID:       r.ID,
			Name:     r.DisplayName(),
			FromCity: r.FromCity,
			ToCity:   r.ToCity,
		})
	}
	return summaries, nil
}

// GetRouteDefinition loads a route and normalizes it for schedule generation
func (s *ScheduleService) GetRouteDefinition(ctx context.Context, id string) (entity.RouteDefinition, error) {
	def, replaced, err := s.loadDefinition(ctx, id)
	if err != nil {
		return entity.RouteDefinition{}, err
	}

	if len(replaced) > 0 {
		s.logger.Warn("Route has missing or malformed fields, applying defaults",
			"routeID", def.ID,
			"fields", replaced)
		if s.metrics != nil {
			for _, field := range replaced {
				s.metrics.DefaultsApplied.WithLabelValues(field).Inc()
			}
		}
	}

	return def, nil
}

// loadDefinition reads and normalizes a route without logging or counting
// the defaults it applied.
func (s *ScheduleService) loadDefinition(ctx context.Context, id string) (entity.RouteDefinition, []string, error) {
	route, err := s.routeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.RouteDefinition{}, nil, fmt.Errorf("%w: %s", ErrRouteNotFound, id)
		}
		s.countError("get_route")
		return entity.RouteDefinition{}, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	def, replaced := NormalizeRoute(route)
	return def, replaced, nil
}

// GetSchedule builds the schedule of a route at the current time of day
func (s *ScheduleService) GetSchedule(ctx context.Context, id string) (*entity.ScheduleResult, error) {
	return s.GetScheduleAt(ctx, id, s.NowMinutes())
}

// GetScheduleAt builds the schedule of a route as seen at nowMinutes
func (s *ScheduleService) GetScheduleAt(ctx context.Context, id string, nowMinutes int) (*entity.ScheduleResult, error) {
	start := time.Now()

	def, err := s.GetRouteDefinition(ctx, id)
	if err != nil {
		return nil, err
	}

	result := BuildSchedule(def, nowMinutes)

	if s.metrics != nil {
		s.metrics.SchedulesBuilt.WithLabelValues(string(result.ServiceStatus)).Inc()
		s.metrics.BuildTime.Observe(time.Since(start).Seconds())
	}
	s.logger.Debug("Schedule built",
		"routeID", def.ID,
		"now", nowMinutes,
		"status", result.ServiceStatus,
		"departures", len(result.AllDepartures))

	return result, nil
}

func (s *ScheduleService) countError(operation string) {
	if s.metrics != nil {
		s.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}
