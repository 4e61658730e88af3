package repository

import (
	"context"

	"ferry-schedule-service/internal/domain/entity"
)

// StatusPublisher defines the interface for broadcasting route status events
type StatusPublisher interface {
	Publish(ctx context.Context, event *entity.StatusEvent) error
}
