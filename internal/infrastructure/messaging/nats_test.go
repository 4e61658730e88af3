package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConn struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (c *recordingConn) Publish(subject string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.subjects = append(c.subjects, subject)
	c.payloads = append(c.payloads, data)
	return nil
}

func TestSubject(t *testing.T) {
	p := newPublisher(&recordingConn{}, "ferry.status.", logger.NewNopLogger())

	assert.Equal(t, "ferry.status.64b7f0c2", p.Subject("64b7f0c2"))
	assert.Equal(t, "ferry.status.a_b_c_d", p.Subject("a.b*c>d"))
}

func TestPublishEncodesEvent(t *testing.T) {
	c := &recordingConn{}
	p := newPublisher(c, "ferry.status", logger.NewNopLogger())

	event := &entity.StatusEvent{
		RouteID:       "r1",
		RouteName:     "Rishra → Khardaha",
		ServiceStatus: entity.ServiceRunning,
		NextDeparture: &entity.DepartureSlot{MinutesOfDay: 780, TimeLabel: "01:00 PM", Status: entity.SlotNext},
	}
	require.NoError(t, p.Publish(context.Background(), event))

	require.Len(t, c.subjects, 1)
	assert.Equal(t, "ferry.status.r1", c.subjects[0])

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(c.payloads[0], &decoded))
	assert.Equal(t, "running", decoded["serviceStatus"])
	assert.Equal(t, "01:00 PM", decoded["nextDeparture"].(map[string]interface{})["timeLabel"])
}

func TestPublishErrors(t *testing.T) {
	c := &recordingConn{err: errors.New("boom")}
	p := newPublisher(c, "ferry.status", logger.NewNopLogger())

	err := p.Publish(context.Background(), &entity.StatusEvent{RouteID: "r1"})
	assert.ErrorContains(t, err, "ferry.status.r1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Publish(ctx, &entity.StatusEvent{RouteID: "r1"}), context.Canceled)
}

func TestCloseWithoutConnection(t *testing.T) {
	p := newPublisher(&recordingConn{}, "ferry.status", logger.NewNopLogger())
	assert.NotPanics(t, p.Close)
}
