package usecase

import (
	"math"
	"testing"

	"ferry-schedule-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRouteWellFormed(t *testing.T) {
	route := &entity.Route{
		ID:                    "r1",
		FromCity:              "Rishra",
		ToCity:                "Khardaha",
		FirstDepartureMinutes: entity.IntPtr(300),
		LastDepartureMinutes:  entity.IntPtr(1340),
		IntervalMinutes:       entity.IntPtr(20),
	}

	def, replaced := NormalizeRoute(route)
	assert.Empty(t, replaced)
	assert.Equal(t, entity.RouteDefinition{
		ID:                    "r1",
		Name:                  "Rishra → Khardaha",
		FromCity:              "Rishra",
		ToCity:                "Khardaha",
		FirstDepartureMinutes: 300,
		LastDepartureMinutes:  1340,
		IntervalMinutes:       20,
	}, def)
}

func TestNormalizeRouteDefaults(t *testing.T) {
	tests := []struct {
		name         string
		route        entity.Route
		wantFirst    int
		wantLast     int
		wantInterval int
		wantReplaced []string
	}{
		{
			name:         "all missing",
			route:        entity.Route{},
			wantFirst:    300,
			wantLast:     1200,
			wantInterval: 20,
			wantReplaced: []string{FieldFirstDeparture, FieldLastDeparture, FieldInterval},
		},
		{
			name:         "interval zero",
			route:        entity.Route{FirstDepartureMinutes: entity.IntPtr(360), LastDepartureMinutes: entity.IntPtr(600), IntervalMinutes: entity.IntPtr(0)},
			wantFirst:    360,
			wantLast:     600,
			wantInterval: 20,
			wantReplaced: []string{FieldInterval},
		},
		{
			name:         "negative interval",
			route:        entity.Route{FirstDepartureMinutes: entity.IntPtr(360), LastDepartureMinutes: entity.IntPtr(600), IntervalMinutes: entity.IntPtr(-5)},
			wantFirst:    360,
			wantLast:     600,
			wantInterval: 20,
			wantReplaced: []string{FieldInterval},
		},
		{
			name:         "interval a day long",
			route:        entity.Route{FirstDepartureMinutes: entity.IntPtr(360), LastDepartureMinutes: entity.IntPtr(600), IntervalMinutes: entity.IntPtr(1440)},
			wantFirst:    360,
			wantLast:     600,
			wantInterval: 20,
			wantReplaced: []string{FieldInterval},
		},
		{
			name:         "interval max int",
			route:        entity.Route{FirstDepartureMinutes: entity.IntPtr(300), LastDepartureMinutes: entity.IntPtr(1340), IntervalMinutes: entity.IntPtr(math.MaxInt)},
			wantFirst:    300,
			wantLast:     1340,
			wantInterval: 20,
			wantReplaced: []string{FieldInterval},
		},
		{
			name:         "interval longer than window",
			route:        entity.Route{FirstDepartureMinutes: entity.IntPtr(300), LastDepartureMinutes: entity.IntPtr(400), IntervalMinutes: entity.IntPtr(1439)},
			wantFirst:    300,
			wantLast:     400,
			wantInterval: 1439,
		},
		{
			name:         "last out of range",
			route:        entity.Route{FirstDepartureMinutes: entity.IntPtr(360), LastDepartureMinutes: entity.IntPtr(1440), IntervalMinutes: entity.IntPtr(15)},
			wantFirst:    360,
			wantLast:     1200,
			wantInterval: 15,
			wantReplaced: []string{FieldLastDeparture},
		},
		{
			name:         "inverted window",
			route:        entity.Route{FirstDepartureMinutes: entity.IntPtr(1300), LastDepartureMinutes: entity.IntPtr(400), IntervalMinutes: entity.IntPtr(15)},
			wantFirst:    300,
			wantLast:     1200,
			wantInterval: 15,
			wantReplaced: []string{FieldFirstDeparture, FieldLastDeparture},
		},
		{
			name:         "first missing beyond default last",
			route:        entity.Route{LastDepartureMinutes: entity.IntPtr(200), IntervalMinutes: entity.IntPtr(15)},
			wantFirst:    300,
			wantLast:     1200,
			wantInterval: 15,
			wantReplaced: []string{FieldFirstDeparture, FieldLastDeparture},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, replaced := NormalizeRoute(&tt.route)
			assert.Equal(t, tt.wantFirst, def.FirstDepartureMinutes)
			assert.Equal(t, tt.wantLast, def.LastDepartureMinutes)
			assert.Equal(t, tt.wantInterval, def.IntervalMinutes)
			assert.ElementsMatch(t, tt.wantReplaced, replaced)
		})
	}
}

func TestNormalizeRouteDoesNotMutate(t *testing.T) {
	route := &entity.Route{IntervalMinutes: entity.IntPtr(0)}
	NormalizeRoute(route)

	assert.Nil(t, route.FirstDepartureMinutes)
	assert.Equal(t, 0, *route.IntervalMinutes)
}
