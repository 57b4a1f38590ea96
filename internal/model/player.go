package model

import "time"

// Player represents a signage device installed at a site.
type Player struct {
	ID           int        `db:"id" json:"id"`
	CustomerID   int        `db:"customer_id" json:"customer_id"`
	SiteID       int        `db:"site_id" json:"site_id"`
	Name         string     `db:"name" json:"name"`
	DeviceUID    *string    `db:"device_uid" json:"device_uid"`
	Paired       bool       `db:"paired" json:"paired"`
	ScreenWidth  *int       `db:"screen_width" json:"screen_width,omitempty"`
	ScreenHeight *int       `db:"screen_height" json:"screen_height,omitempty"`
	LastSeenAt   *time.Time `db:"last_seen_at" json:"last_seen_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
