package model

import "time"

type Content struct {
	ID              int       `db:"id" json:"id"`
	CustomerID      int       `db:"customer_id" json:"customer_id"`
	Name            string    `db:"name" json:"name"`
	Type            string    `db:"type" json:"type"`
	FileURL         string    `db:"file_url" json:"file_url"`
	MimeType        *string   `db:"mime_type" json:"mime_type,omitempty"`
	FileSize        *int64    `db:"file_size" json:"file_size,omitempty"`
	Width           *int      `db:"width" json:"width,omitempty"`
	Height          *int      `db:"height" json:"height,omitempty"`
	ThumbnailURL    *string   `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	DefaultDuration *int      `db:"default_duration" json:"default_duration,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
