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
)

type broadcastState struct {
	status entity.ServiceStatus
	next   int // -1 when there is no next departure
}

// StatusBroadcaster periodically publishes route status changes
type StatusBroadcaster struct {
	schedules *ScheduleService
	publisher repository.StatusPublisher
	metrics   *metrics.Metrics
	logger    logger.Logger

	last map[string]broadcastState
}

// NewStatusBroadcaster creates a new status broadcaster
func NewStatusBroadcaster(
	schedules *ScheduleService,
	publisher repository.StatusPublisher,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *StatusBroadcaster {
	return &StatusBroadcaster{
		schedules: schedules,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		last:      make(map[string]broadcastState),
	}
}

// Run ticks until ctx is cancelled
func (b *StatusBroadcaster) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if _, err := b.Tick(ctx); err != nil {
		b.logger.Error("Status broadcast failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Status broadcaster stopped")
			return
		case <-ticker.C:
			if _, err := b.Tick(ctx); err != nil {
				b.logger.Error("Status broadcast failed", "error", err)
			}
		}
	}
}

// Tick evaluates every route at the current minute and publishes an event for
// each route whose service status or next departure changed. It returns the number published.
// Schedules built here are not counted in the request metrics.
func (b *StatusBroadcaster) Tick(ctx context.Context) (int, error) {
	routes, err := b.schedules.ListRoutes(ctx)
	if err != nil {
		return 0, err
	}

	now := b.schedules.NowMinutes()
	published := 0
	current := make(map[string]broadcastState, len(routes))
	var errs []error

	for _, route := range routes {
		def, _, err := b.schedules.loadDefinition(ctx, route.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("route %s: %w", route.ID, err))
			continue
		}
		schedule := BuildSchedule(def, now)

		state := broadcastState{status: schedule.ServiceStatus, next: -1}
		if schedule.NextDeparture != nil {
			state.next = schedule.NextDeparture.MinutesOfDay
		}
		if prev, ok := b.last[route.ID]; ok && prev == state {
			current[route.ID] = state
			continue
		}

		event := &entity.StatusEvent{
			RouteID:       schedule.RouteID,
			RouteName:     schedule.RouteName,
			ServiceStatus: schedule.ServiceStatus,
			Message:       schedule.Message,
			NextDeparture: schedule.NextDeparture,
			At:            time.Now().UTC(),
		}
		if err := b.publisher.Publish(ctx, event); err != nil {
			if b.metrics != nil {
				b.metrics.ErrorsCount.WithLabelValues("publish_status").Inc()
			}
			errs = append(errs, fmt.Errorf("publish %s: %w", route.ID, err))
			continue
		}

		current[route.ID] = state
		published++
		if b.metrics != nil {
			b.metrics.StatusBroadcasts.Inc()
		}
		b.logger.Debug("Status published", "routeID", route.ID, "status", schedule.ServiceStatus)
	}

	// Routes that were removed or failed this tick are forgotten.
	b.last = current

	return published, errors.Join(errs...)
}
