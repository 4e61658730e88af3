package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Constants
const (
	MinutesPerDay = 24 * 60
	CLOCK_LAYOUT  = "15:04"
)

// FormatTimeLabel renders minutes since midnight as a 12-hour clock label,
// e.g. 0 -> "12:00 AM", 750 -> "12:30 PM", 780 -> "01:00 PM".
func FormatTimeLabel(totalMinutes int) string {
	h := totalMinutes / 60
	m := totalMinutes % 60

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	if h == 0 {
		h = 12
	}
	if h > 12 {
		h -= 12
	}

	return fmt.Sprintf("%02d:%02d %s", h, m, suffix)
}

// FormatClock renders minutes since midnight as a 24-hour "HH:MM" string
func FormatClock(totalMinutes int) string {
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// MinutesOfDay returns the wall-clock minute of t in its own location
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ParseClock parses a 24-hour "HH:MM" (or "H:MM") time of day into minutes since midnight
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}
	if len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}

	return h*60 + m, nil
}
