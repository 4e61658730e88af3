package entity

// ServiceStatus is the route-wide classification at a point in the day
type ServiceStatus string

// Service statuses
const (
	ServiceBeforeStart ServiceStatus = "before_start"
	ServiceClosed      ServiceStatus = "closed"
	ServiceTideBreak   ServiceStatus = "tide_break"
	ServiceRunning     ServiceStatus = "running"
)

// SlotStatus is the classification of a single departure
type SlotStatus string

// Departure slot statuses
const (
	SlotDeparted  SlotStatus = "departed"
	SlotUpcoming  SlotStatus = "upcoming"
	SlotNext      SlotStatus = "next"
	SlotTideBlock SlotStatus = "tide_block"
)

// DepartureSlot represents one scheduled boat
type DepartureSlot struct {
	MinutesOfDay int        `json:"minutesOfDay"`
	TimeLabel    string     `json:"timeLabel"`
	Status       SlotStatus `json:"status"`
}

// ScheduleResult is a full day's itinerary for a route as seen at one moment
type ScheduleResult struct {
	RouteID       string          `json:"routeId"`
	RouteName     string          `json:"routeName"`
	FromCity      string          `json:"fromCity"`
	ToCity        string          `json:"toCity"`
	CurrentTime   string          `json:"currentTime"`
	ServiceStatus ServiceStatus   `json:"serviceStatus"`
	Message       string          `json:"message"`
	NextDeparture *DepartureSlot  `json:"nextDeparture"`
	Upcoming      []DepartureSlot `json:"upcoming"`
	AllDepartures []DepartureSlot `json:"allDepartures"`
}
