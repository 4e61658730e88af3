package entity

import "time"

// StatusEvent is published whenever a route's service status or next departure changes
type StatusEvent struct {
	RouteID       string         `json:"routeId"`
	RouteName     string         `json:"routeName"`
	ServiceStatus ServiceStatus  `json:"serviceStatus"`
	Message       string         `json:"message"`
	NextDeparture *DepartureSlot `json:"nextDeparture"`
	At            time.Time      `json:"at"`
}
