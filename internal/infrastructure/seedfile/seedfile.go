package seedfile

import (
	"fmt"
	"os"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/pkg/utils"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a route seed file
type File struct {
	Routes []RouteSeed `yaml:"routes"`
}

// RouteSeed describes one route with 24-hour "HH:MM" service window bounds
type RouteSeed struct {
	Name            string `yaml:"name"`
	Code            string `yaml:"code"`
	FromCity        string `yaml:"fromCity"`
	ToCity          string `yaml:"toCity"`
	FirstDeparture  string `yaml:"firstDeparture"`
	LastDeparture   string `yaml:"lastDeparture"`
	IntervalMinutes *int   `yaml:"intervalMinutes"`
}

// Load reads and converts a seed file
func Load(path string) ([]*entity.Route, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(b)
}

// Parse converts seed file contents into routes. Empty times are left unset so
// the schedule boundary fills them with defaults.
func Parse(b []byte) ([]*entity.Route, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	routes := make([]*entity.Route, 0, len(f.Routes))
	for i, seed := range f.Routes {
		if seed.FromCity == "" || seed.ToCity == "" {
			return nil, fmt.Errorf("route %d: fromCity and toCity are required", i)
		}

		route := &entity.Route{
			Name:            seed.Name,
			Code:            seed.Code,
			FromCity:        seed.FromCity,
			ToCity:          seed.ToCity,
			IntervalMinutes: seed.IntervalMinutes,
		}
		if route.Name == "" {
			route.Name = route.DisplayName()
		}

		var err error
		if route.FirstDepartureMinutes, err = optionalClock(seed.FirstDeparture); err != nil {
			return nil, fmt.Errorf("route %d firstDeparture: %w", i, err)
		}
		if route.LastDepartureMinutes, err = optionalClock(seed.LastDeparture); err != nil {
			return nil, fmt.Errorf("route %d lastDeparture: %w", i, err)
		}

		routes = append(routes, route)
	}

	return routes, nil
}

func optionalClock(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	m, err := utils.ParseClock(value)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
