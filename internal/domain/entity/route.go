package entity

import (
	"time"
)

// Route is a persisted ferry route. The numeric service window fields are
// nil when the stored value is missing or not a number.
type Route struct {
	ID                    string     `bson:"_id,omitempty" yaml:"-"`
	Name                  string     `bson:"name" yaml:"name"`
	Code                  string     `bson:"code" yaml:"code"`
	FromCity              string     `bson:"fromCity" yaml:"fromCity"`
	ToCity                string     `bson:"toCity" yaml:"toCity"`
	FirstDepartureMinutes *int       `bson:"firstDepartureMinutes,omitempty" yaml:"-"`
	LastDepartureMinutes  *int       `bson:"lastDepartureMinutes,omitempty" yaml:"-"`
	IntervalMinutes       *int       `bson:"intervalMinutes,omitempty" yaml:"-"`
	CreatedAt             time.Time  `bson:"createdAt" yaml:"-"`
	UpdatedAt             *time.Time `bson:"updatedAt,omitempty" yaml:"-"`
}

// DisplayName returns the route name, composing it from the cities when unset
func (r *Route) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.FromCity + " → " + r.ToCity
}

// RouteSummary is the listing view of a route
type RouteSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FromCity string `json:"fromCity"`
	ToCity   string `json:"toCity"`
}

// RouteDefinition is a validated route, ready for schedule generation.
// FirstDepartureMinutes <= LastDepartureMinutes, both in [0, 1439], IntervalMinutes > 0.
type RouteDefinition struct {
	ID                    string
	Name                  string
	FromCity              string
	ToCity                string
	FirstDepartureMinutes int
	LastDepartureMinutes  int
	IntervalMinutes       int
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
