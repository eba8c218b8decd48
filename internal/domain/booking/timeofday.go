package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// CleanupMinutes is the turnaround gap appended after every service.
	CleanupMinutes = 5

	// SlotStepMinutes is the scheduling quantum for candidate start times.
	SlotStepMinutes = 15

	// LeadTimeMinutes is the minimum gap between now and a same-day booking.
	LeadTimeMinutes = 120

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// TimeToMinutes converts "HH:MM" into minutes since midnight.
// Callers are expected to validate the format first.
func TimeToMinutes(s string) int {
	h, m, _ := strings.Cut(s, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// MinutesToTime is the inverse of TimeToMinutes. Values >= 1440 do not wrap.
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MinuteOfDay returns the wall-clock minute of t in t's own location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
