package templates

import (
	"testing"

	"ferry-schedule-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestServiceMessage(t *testing.T) {
	data := MessageData{FirstDeparture: "05:00 AM", TideStart: "12:00 PM", TideEnd: "12:45 PM"}

	assert.Equal(t, "Services haven't started yet. First boat at 05:00 AM.",
		ServiceMessage(entity.ServiceBeforeStart, data))
	assert.Equal(t, "No more boats today. Next service starts at 05:00 AM tomorrow.",
		ServiceMessage(entity.ServiceClosed, data))
	assert.Contains(t, ServiceMessage(entity.ServiceTideBreak, data), "high tide (approx. 12:00 PM to 12:45 PM)")
	assert.Empty(t, ServiceMessage(entity.ServiceRunning, data))
	assert.Empty(t, ServiceMessage(entity.ServiceStatus("unknown"), data))
}
