package model

import (
	"encoding/json"
	"time"
)

// Layer types form a closed set; the content config payload shape depends on
// the type, so it stays raw JSON until someone asks for a typed view.
const (
	LayerTypeText     = "text"
	LayerTypeImage    = "image"
	LayerTypeVideo    = "video"
	LayerTypePlaylist = "playlist"
	LayerTypeHTML     = "html"
	LayerTypeIframe   = "iframe"
	LayerTypeWeather  = "weather"
	LayerTypeRSS      = "rss"
	LayerTypeNews     = "news"
	LayerTypeYouTube  = "youtube"
	LayerTypeClock    = "clock"
	LayerTypeShape    = "shape"
)

// LayerTypes lists every accepted layer type, used for request validation.
var LayerTypes = []string{
	LayerTypeText, LayerTypeImage, LayerTypeVideo, LayerTypePlaylist,
	LayerTypeHTML, LayerTypeIframe, LayerTypeWeather, LayerTypeRSS,
	LayerTypeNews, LayerTypeYouTube, LayerTypeClock, LayerTypeShape,
}

type Layout struct {
	ID              int       `db:"id" json:"id"`
	CustomerID      int       `db:"customer_id" json:"customer_id"`
	Name            string    `db:"name" json:"name"`
	Width           int       `db:"width" json:"width"`
	Height          int       `db:"height" json:"height"`
	BackgroundColor string    `db:"background_color" json:"background_color"`
	Tags            *string   `db:"tags" json:"tags,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
	Layers          []Layer   `db:"-" json:"layers,omitempty"`
}

type Layer struct {
	ID        int             `db:"id" json:"id"`
	LayoutID  int             `db:"layout_id" json:"layout_id"`
	Type      string          `db:"type" json:"type"`
	X         int             `db:"x" json:"x"`
	Y         int             `db:"y" json:"y"`
	Width     int             `db:"width" json:"width"`
	Height    int             `db:"height" json:"height"`
	Rotation  float64         `db:"rotation" json:"rotation"`
	Opacity   float64         `db:"opacity" json:"opacity"`
	ZIndex    int             `db:"z_index" json:"z_index"`
	Visible   bool            `db:"visible" json:"visible"`
	Locked    bool            `db:"locked" json:"locked"`
	Config    json.RawMessage `db:"config" json:"config"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// LayerPatch carries the partial-update fields for a layer; nil means
// "leave unchanged".
type LayerPatch struct {
	X        *int
	Y        *int
	Width    *int
	Height   *int
	Rotation *float64
	Opacity  *float64
	ZIndex   *int
	Visible  *bool
	Locked   *bool
	Config   json.RawMessage
}

// playlistConfig is the only config variant the scheduling engine cares
// about; every other layer type renders straight from its own config.
type playlistConfig struct {
	PlaylistID int `json:"playlist_id"`
}

// PlaylistRef returns the playlist id referenced by a playlist layer's
// config. Non-playlist layers, malformed config and non-positive ids all
// report no reference.
func (l Layer) PlaylistRef() (int, bool) {
	if l.Type != LayerTypePlaylist || len(l.Config) == 0 {
		return 0, false
	}
	var cfg playlistConfig
	if err := json.Unmarshal(l.Config, &cfg); err != nil || cfg.PlaylistID <= 0 {
		return 0, false
	}
	return cfg.PlaylistID, true
}
