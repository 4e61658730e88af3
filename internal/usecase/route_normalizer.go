package usecase

import (
	"slices"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/pkg/utils"
)

// Defaults substituted for missing or malformed route fields
const (
	DefaultFirstDepartureMinutes = 5 * 60
	DefaultLastDepartureMinutes  = 20 * 60
	DefaultIntervalMinutes       = 20
)

// Field names reported when a default is applied
const (
	FieldFirstDeparture = "firstDepartureMinutes"
	FieldLastDeparture  = "lastDepartureMinutes"
	FieldInterval       = "intervalMinutes"
)

// NormalizeRoute turns a stored route into a RouteDefinition, filling any
// missing, out-of-range or non-positive numeric field with its default.
// Intervals must be shorter than a day.
// It returns the names of the fields that were replaced; the stored route is not modified.
func NormalizeRoute(route *entity.Route) (entity.RouteDefinition, []string) {
	var replaced []string

	first, ok := minuteOfDay(route.FirstDepartureMinutes)
	if !ok {
		first = DefaultFirstDepartureMinutes
		replaced = append(replaced, FieldFirstDeparture)
	}

	last, ok := minuteOfDay(route.LastDepartureMinutes)
	if !ok {
		last = DefaultLastDepartureMinutes
		replaced = append(replaced, FieldLastDeparture)
	}

	// An inverted window cannot be repaired field by field.
	if first > last {
		first, last = DefaultFirstDepartureMinutes, DefaultLastDepartureMinutes
		replaced = appendMissing(replaced, FieldFirstDeparture, FieldLastDeparture)
	}

	// A day holds at most MinutesPerDay-1 minutes between two departures.
	interval := DefaultIntervalMinutes
	if v := route.IntervalMinutes; v != nil && *v > 0 && *v < utils.MinutesPerDay {
		interval = *v
	} else {
		replaced = append(replaced, FieldInterval)
	}

	return entity.RouteDefinition{
		ID:                    route.ID,
		Name:                  route.DisplayName(),
		FromCity:              route.FromCity,
		ToCity:                route.ToCity,
		FirstDepartureMinutes: first,
		LastDepartureMinutes:  last,
		IntervalMinutes:       interval,
	}, replaced
}

func minuteOfDay(v *int) (int, bool) {
	if v == nil || *v < 0 || *v >= utils.MinutesPerDay {
		return 0, false
	}
	return *v, true
}

func appendMissing(list []string, names ...string) []string {
	for _, name := range names {
		if !slices.Contains(list, name) {
			list = append(list, name)
		}
	}
	return list
}
