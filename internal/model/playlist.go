package model

import "time"

const (
	TransitionNone  = "none"
	TransitionFade  = "fade"
	TransitionSlide = "slide"
)

type Playlist struct {
	ID         int            `db:"id" json:"id"`
	CustomerID int            `db:"customer_id" json:"customer_id"`
	Name       string         `db:"name" json:"name"`
	IsActive   bool           `db:"is_active" json:"is_active"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
	Items      []PlaylistItem `db:"-" json:"items,omitempty"`
}

type PlaylistItem struct {
	ID                 int       `db:"id" json:"id"`
	PlaylistID         int       `db:"playlist_id" json:"playlist_id"`
	ContentID          int       `db:"content_id" json:"content_id"`
	DisplayOrder       int       `db:"display_order" json:"display_order"`
	Duration           *int      `db:"duration" json:"duration,omitempty"`
	TransitionType     *string   `db:"transition_type" json:"transition_type,omitempty"`
	TransitionDuration *int      `db:"transition_duration" json:"transition_duration,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	Content            *Content  `db:"-" json:"content,omitempty"`
}
