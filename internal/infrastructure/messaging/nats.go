package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/pkg/logger"

	"github.com/nats-io/nats.go"
)

type conn interface {
	Publish(subject string, data []byte) error
}

// NATSStatusPublisher publishes route status events on NATS subjects <prefix>.<routeID>
type NATSStatusPublisher struct {
	nc     *nats.Conn
	conn   conn
	prefix string
	logger logger.Logger
}

// NewNATSStatusPublisher connects to url and returns a publisher
func NewNATSStatusPublisher(url, prefix string, logger logger.Logger) (*NATSStatusPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("ferry-schedule-service"),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	p := newPublisher(nc, prefix, logger)
	p.nc = nc
	return p, nil
}

func newPublisher(c conn, prefix string, logger logger.Logger) *NATSStatusPublisher {
	return &NATSStatusPublisher{
		conn:   c,
		prefix: strings.TrimSuffix(prefix, "."),
		logger: logger,
	}
}

// Subject returns the subject a route's events are published on
func (p *NATSStatusPublisher) Subject(routeID string) string {
	// NATS tokens cannot contain '.', '*', '>' or whitespace.
	token := strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\n', '\r':
			return '_'
		}
		return r
	}, routeID)
	return p.prefix + "." + token
}

// Publish sends the event as JSON
func (p *NATSStatusPublisher) Publish(ctx context.Context, event *entity.StatusEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	subject := p.Subject(event.RouteID)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// Close drains and closes the connection
func (p *NATSStatusPublisher) Close() {
	if p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.logger.Warn("NATS drain failed", "error", err)
	}
	p.nc.Close()
}
