package usecase

import (
	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/pkg/utils"
	"ferry-schedule-service/templates"
)

// Daily high-tide closure, [TideStartMinutes, TideEndMinutes), shared by every route.
const (
	TideStartMinutes = 12 * 60
	TideEndMinutes   = 12*60 + 45

	// UpcomingLimit caps the upcoming subsequence of a schedule
	UpcomingLimit = 5
)

// InTideWindow reports whether a minute of the day falls inside the tide closure
func InTideWindow(minutes int) bool {
	return minutes >= TideStartMinutes && minutes < TideEndMinutes
}

// ServiceStatusAt classifies the route as a whole at nowMinutes. The checks
// run in a fixed order and the first match wins.
func ServiceStatusAt(def entity.RouteDefinition, nowMinutes int) entity.ServiceStatus {
	switch {
	case nowMinutes < def.FirstDepartureMinutes:
		return entity.ServiceBeforeStart
	case nowMinutes > def.LastDepartureMinutes:
		return entity.ServiceClosed
	case InTideWindow(nowMinutes):
		return entity.ServiceTideBreak
	default:
		return entity.ServiceRunning
	}
}

// BuildSchedule generates the full day's departures for def as seen at
// nowMinutes (minutes since midnight). It never fails on a validated definition.
func BuildSchedule(def entity.RouteDefinition, nowMinutes int) *entity.ScheduleResult {
	status := ServiceStatusAt(def, nowMinutes)

	interval := def.IntervalMinutes
	if interval < 1 {
		interval = 1
	}

	var (
		all      []entity.DepartureSlot
		next     *entity.DepartureSlot
		nextSeen bool
	)
	if def.LastDepartureMinutes >= def.FirstDepartureMinutes {
		all = make([]entity.DepartureSlot, 0, (def.LastDepartureMinutes-def.FirstDepartureMinutes)/interval+1)
	}

	for t := def.FirstDepartureMinutes; t <= def.LastDepartureMinutes; t += interval {
		var slotStatus entity.SlotStatus
		switch {
		case InTideWindow(t):
			slotStatus = entity.SlotTideBlock
		case t < nowMinutes:
			slotStatus = entity.SlotDeparted
		case !nextSeen:
			slotStatus = entity.SlotNext
			nextSeen = true
		default:
			slotStatus = entity.SlotUpcoming
		}

		all = append(all, entity.DepartureSlot{
			MinutesOfDay: t,
			TimeLabel:    utils.FormatTimeLabel(t),
			Status:       slotStatus,
		})

		// Stop before t+interval can overflow.
		if t > def.LastDepartureMinutes-interval {
			break
		}
	}

	upcoming := make([]entity.DepartureSlot, 0, UpcomingLimit)
	for i := range all {
		switch all[i].Status {
		case entity.SlotNext:
			slot := all[i]
			next = &slot
		case entity.SlotUpcoming:
			if len(upcoming) < UpcomingLimit {
				upcoming = append(upcoming, all[i])
			}
		}
	}
	if all == nil {
		all = []entity.DepartureSlot{}
	}

	return &entity.ScheduleResult{
		RouteID:       def.ID,
		RouteName:     def.Name,
		FromCity:      def.FromCity,
		ToCity:        def.ToCity,
		CurrentTime:   utils.FormatTimeLabel(nowMinutes),
		ServiceStatus: status,
		Message: templates.ServiceMessage(status, templates.MessageData{
			FirstDeparture: utils.FormatTimeLabel(def.FirstDepartureMinutes),
			TideStart:      utils.FormatTimeLabel(TideStartMinutes),
			TideEnd:        utils.FormatTimeLabel(TideEndMinutes),
		}),
		NextDeparture: next,
		Upcoming:      upcoming,
		AllDepartures: all,
	}
}
