package model

import (
	"time"

	"github.com/lib/pq"
)

// Webhook event names emitted by the admin API.
const (
	EventScheduleCreated = "schedule.created"
	EventScheduleUpdated = "schedule.updated"
	EventScheduleDeleted = "schedule.deleted"
	EventContentCreated  = "content.created"
	EventContentDeleted  = "content.deleted"
	EventPlayerPaired    = "player.paired"
	EventPlayerOffline   = "player.offline"
)

type Webhook struct {
	ID         int            `db:"id" json:"id"`
	CustomerID int            `db:"customer_id" json:"customer_id"`
	URL        string         `db:"url" json:"url"`
	Secret     string         `db:"secret" json:"-"`
	Events     pq.StringArray `db:"events" json:"events"`
	IsActive   bool           `db:"is_active" json:"is_active"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}
