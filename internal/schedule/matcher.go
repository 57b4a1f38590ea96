// Package schedule implements the resolution engine that decides what a
// player device should currently display: pick the winning schedule for
// the player, expand its layout's playlist layers, and flatten them into
// one ordered content sequence.
package schedule

import (
	"time"

	"github.com/helioscast/helios/internal/model"
)

// IsActiveAt reports whether a schedule's temporal constraints admit the
// given instant. Inactive schedules never match. Each constraint that is
// unset leaves its dimension unconstrained. Pure function; safe to call
// from anywhere.
func IsActiveAt(s model.Schedule, now time.Time) bool {
	if !s.IsActive {
		return false
	}
	if !dateInRange(s.StartDate, s.EndDate, now) {
		return false
	}
	if !timeOfDayInWindow(s.StartTime, s.EndTime, now) {
		return false
	}
	return weekdayAllowed(s.DaysOfWeek, now)
}

// dateKey flattens a timestamp to a comparable calendar day, so inclusive
// date-range checks ignore the time component entirely.
func dateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

func dateInRange(start, end *time.Time, now time.Time) bool {
	day := dateKey(now)
	if start != nil && day < dateKey(*start) {
		return false
	}
	if end != nil && day > dateKey(*end) {
		return false
	}
	return true
}

// parseClock converts "HH:MM:SS" (or "HH:MM") into seconds since
// midnight. Unparseable values report false and the caller treats the
// bound as unconstrained.
func parseClock(value string) (int, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Hour()*3600 + t.Minute()*60 + t.Second(), true
		}
	}
	return 0, false
}

// timeOfDayInWindow checks an inclusive time-of-day window. When the end
// bound is earlier than the start bound the window crosses midnight and
// matches the two half-windows on either side of it.
func timeOfDayInWindow(start, end *string, now time.Time) bool {
	tod := now.Hour()*3600 + now.Minute()*60 + now.Second()

	var startSec, endSec int
	hasStart, hasEnd := false, false
	if start != nil {
		startSec, hasStart = parseClock(*start)
	}
	if end != nil {
		endSec, hasEnd = parseClock(*end)
	}

	switch {
	case hasStart && hasEnd:
		if startSec <= endSec {
			return tod >= startSec && tod <= endSec
		}
		return tod >= startSec || tod <= endSec
	case hasStart:
		return tod >= startSec
	case hasEnd:
		return tod <= endSec
	default:
		return true
	}
}

func weekdayAllowed(days []int64, now time.Time) bool {
	if len(days) == 0 {
		return true
	}
	weekday := int64(now.Weekday())
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}
