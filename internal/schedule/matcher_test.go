package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/helioscast/helios/internal/model"
)

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

func dateptr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestIsActiveAtDateBoundaries(t *testing.T) {
	s := model.Schedule{
		IsActive:  true,
		StartDate: dateptr(2025, time.January, 1),
		EndDate:   dateptr(2025, time.January, 31),
	}

	assert.True(t, IsActiveAt(s, at(2025, time.January, 1, 0, 0)), "first day at midnight")
	assert.True(t, IsActiveAt(s, at(2025, time.January, 31, 23, 59)), "last day just before midnight")
	assert.False(t, IsActiveAt(s, at(2024, time.December, 31, 12, 0)), "day before range")
	assert.False(t, IsActiveAt(s, at(2025, time.February, 1, 0, 0)), "day after range")
}

func TestIsActiveAtCrossMidnightWindow(t *testing.T) {
	s := model.Schedule{
		IsActive:  true,
		StartTime: strptr("22:00:00"),
		EndTime:   strptr("06:00:00"),
	}

	assert.True(t, IsActiveAt(s, at(2025, time.June, 10, 23, 30)), "before midnight")
	assert.True(t, IsActiveAt(s, at(2025, time.June, 11, 2, 0)), "after midnight")
	assert.False(t, IsActiveAt(s, at(2025, time.June, 10, 12, 0)), "midday outside window")
}

func TestIsActiveAtPlainWindow(t *testing.T) {
	s := model.Schedule{
		IsActive:  true,
		StartTime: strptr("09:00:00"),
		EndTime:   strptr("17:00:00"),
	}

	assert.True(t, IsActiveAt(s, at(2025, time.June, 10, 9, 0)), "inclusive start")
	assert.True(t, IsActiveAt(s, at(2025, time.June, 10, 17, 0)), "inclusive end")
	assert.False(t, IsActiveAt(s, at(2025, time.June, 10, 17, 1)))
	assert.False(t, IsActiveAt(s, at(2025, time.June, 10, 8, 59)))
}

func TestIsActiveAtHalfOpenTimeWindow(t *testing.T) {
	onlyStart := model.Schedule{IsActive: true, StartTime: strptr("18:00:00")}
	assert.True(t, IsActiveAt(onlyStart, at(2025, time.June, 10, 20, 0)))
	assert.False(t, IsActiveAt(onlyStart, at(2025, time.June, 10, 10, 0)))

	onlyEnd := model.Schedule{IsActive: true, EndTime: strptr("12:00:00")}
	assert.True(t, IsActiveAt(onlyEnd, at(2025, time.June, 10, 10, 0)))
	assert.False(t, IsActiveAt(onlyEnd, at(2025, time.June, 10, 14, 0)))
}

func TestIsActiveAtWeekdayFilter(t *testing.T) {
	// Monday, Wednesday, Friday
	s := model.Schedule{
		IsActive:   true,
		DaysOfWeek: []int64{1, 3, 5},
	}

	// 2025-06-10 is a Tuesday, 2025-06-11 a Wednesday
	assert.False(t, IsActiveAt(s, at(2025, time.June, 10, 12, 0)), "Tuesday never matches")
	assert.True(t, IsActiveAt(s, at(2025, time.June, 11, 12, 0)), "Wednesday matches")
}

func TestIsActiveAtWeekdayBeatsEverythingElse(t *testing.T) {
	// constraints that all pass except the weekday set
	s := model.Schedule{
		IsActive:   true,
		StartDate:  dateptr(2025, time.January, 1),
		EndDate:    dateptr(2025, time.December, 31),
		StartTime:  strptr("00:00:00"),
		EndTime:    strptr("23:59:59"),
		DaysOfWeek: []int64{1, 3, 5},
	}
	assert.False(t, IsActiveAt(s, at(2025, time.June, 10, 12, 0)))
}

func TestIsActiveAtInactiveNeverMatches(t *testing.T) {
	s := model.Schedule{IsActive: false}
	assert.False(t, IsActiveAt(s, at(2025, time.June, 10, 12, 0)))
}

func TestIsActiveAtUnconstrained(t *testing.T) {
	s := model.Schedule{IsActive: true}
	assert.True(t, IsActiveAt(s, at(2025, time.June, 10, 3, 17)))
}

func TestIsActiveAtMalformedTimeTreatedAsUnconstrained(t *testing.T) {
	s := model.Schedule{
		IsActive:  true,
		StartTime: strptr("not-a-clock"),
		EndTime:   strptr("12:00:00"),
	}
	assert.True(t, IsActiveAt(s, at(2025, time.June, 10, 10, 0)))
	assert.False(t, IsActiveAt(s, at(2025, time.June, 10, 14, 0)))
}
