package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"ferry-schedule-service/internal/domain/entity"

	"github.com/jamespfennell/gtfs"
)

// gtfsFerryRouteType is the route_type GTFS assigns to boat services
const gtfsFerryRouteType = 4

type ferryDirection struct {
	routeID  string
	name     string
	fromCity string
	toCity   string
}

// FerryRoutesFromGTFS derives one route per ferry route and direction of a static
// feed. The service window spans the first stop departures of all its trips and the
// interval is the smallest gap between two consecutive departures.
func FerryRoutesFromGTFS(static *gtfs.Static) []*entity.Route {
	if static == nil {
		return nil
	}

	departures := make(map[ferryDirection][]int)
	for i := range static.Trips {
		trip := &static.Trips[i]
		if trip.Route == nil || int(trip.Route.Type) != gtfsFerryRouteType {
			continue
		}
		if len(trip.StopTimes) < 2 {
			continue
		}

		stopTimes := make([]gtfs.ScheduledStopTime, len(trip.StopTimes))
		copy(stopTimes, trip.StopTimes)
		sort.Slice(stopTimes, func(a, b int) bool {
			return stopTimes[a].StopSequence < stopTimes[b].StopSequence
		})

		origin, terminus := stopTimes[0], stopTimes[len(stopTimes)-1]
		if origin.Stop == nil || terminus.Stop == nil {
			continue
		}
		// Departures past midnight belong to the next service day.
		if origin.DepartureTime < 0 || origin.DepartureTime >= 24*time.Hour {
			continue
		}

		key := ferryDirection{
			routeID:  trip.Route.Id,
			name:     routeDisplayName(trip.Route),
			fromCity: origin.Stop.Name,
			toCity:   terminus.Stop.Name,
		}
		departures[key] = append(departures[key], int(origin.DepartureTime/time.Minute))
	}

	keys := make([]ferryDirection, 0, len(departures))
	for k := range departures {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].routeID != keys[b].routeID {
			return keys[a].routeID < keys[b].routeID
		}
		return keys[a].fromCity < keys[b].fromCity
	})

	routes := make([]*entity.Route, 0, len(keys))
	for _, k := range keys {
		times := uniqueSorted(departures[k])
		route := &entity.Route{
			Name:                  fmt.Sprintf("%s → %s", k.fromCity, k.toCity),
			Code:                  "gtfs-" + slugify(k.routeID+"-"+k.fromCity),
			FromCity:              k.fromCity,
			ToCity:                k.toCity,
			FirstDepartureMinutes: entity.IntPtr(times[0]),
			LastDepartureMinutes:  entity.IntPtr(times[len(times)-1]),
		}
		if gap := smallestGap(times); gap > 0 {
			route.IntervalMinutes = entity.IntPtr(gap)
		}
		if k.name != "" {
			route.Name = fmt.Sprintf("%s: %s", k.name, route.Name)
		}
		routes = append(routes, route)
	}

	return routes
}

func routeDisplayName(r *gtfs.Route) string {
	if r.ShortName != "" {
		return r.ShortName
	}
	return r.LongName
}

func uniqueSorted(values []int) []int {
	sort.Ints(values)
	out := values[:0]
	for i, v := range values {
		if i == 0 || v != values[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// smallestGap returns 0 for a single departure
func smallestGap(sorted []int) int {
	gap := 0
	for i := 1; i < len(sorted); i++ {
		d := sorted[i] - sorted[i-1]
		if d > 0 && (gap == 0 || d < gap) {
			gap = d
		}
	}
	return gap
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
