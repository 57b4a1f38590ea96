package model

import (
	"time"

	"github.com/lib/pq"
)

// Assignment scope tiers. A lower tier always beats a higher one during
// resolution, independent of the schedule's own priority field.
const (
	ScopePlayer   = 0
	ScopeSite     = 1
	ScopeCustomer = 2
)

// Schedule is a time-windowed intent to show a layout. All temporal
// constraints are optional; a nil field leaves that dimension unconstrained.
// Dates are inclusive calendar days; times are inclusive time-of-day bounds
// in "HH:MM:SS" form, where end < start means the window crosses midnight.
// DaysOfWeek uses Go's weekday numbering (0=Sunday); nil or empty means
// every day.
type Schedule struct {
	ID         int           `db:"id" json:"id"`
	CustomerID int           `db:"customer_id" json:"customer_id"`
	Name       string        `db:"name" json:"name"`
	LayoutID   int           `db:"layout_id" json:"layout_id"`
	Priority   int           `db:"priority" json:"priority"`
	StartDate  *time.Time    `db:"start_date" json:"start_date,omitempty"`
	EndDate    *time.Time    `db:"end_date" json:"end_date,omitempty"`
	StartTime  *string       `db:"start_time" json:"start_time,omitempty"`
	EndTime    *string       `db:"end_time" json:"end_time,omitempty"`
	DaysOfWeek pq.Int64Array `db:"days_of_week" json:"days_of_week,omitempty"`
	IsActive   bool          `db:"is_active" json:"is_active"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at" json:"updated_at"`
}

// SchedulePatch carries the partial-update fields for a schedule; nil
// means "leave unchanged".
type SchedulePatch struct {
	Name       *string
	LayoutID   *int
	Priority   *int
	StartDate  *time.Time
	EndDate    *time.Time
	StartTime  *string
	EndTime    *string
	DaysOfWeek pq.Int64Array
	IsActive   *bool
}

// ScheduleAssignment binds a schedule to exactly one of the three scope
// targets; the database enforces the exactly-one rule.
type ScheduleAssignment struct {
	ID         int       `db:"id" json:"id"`
	ScheduleID int       `db:"schedule_id" json:"schedule_id"`
	CustomerID *int      `db:"target_customer_id" json:"target_customer_id,omitempty"`
	SiteID     *int      `db:"target_site_id" json:"target_site_id,omitempty"`
	PlayerID   *int      `db:"target_player_id" json:"target_player_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// ScopeTier derives the resolution tier from whichever target is set.
func (a ScheduleAssignment) ScopeTier() int {
	switch {
	case a.PlayerID != nil:
		return ScopePlayer
	case a.SiteID != nil:
		return ScopeSite
	default:
		return ScopeCustomer
	}
}

// ScheduleCandidate is a schedule joined with the scope tier of the
// assignment that made it reachable from a player.
type ScheduleCandidate struct {
	Schedule
	ScopeTier int `db:"scope_tier" json:"scope_tier"`
}
