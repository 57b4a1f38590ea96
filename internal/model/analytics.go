package model

import "time"

// PlaybackEvent is a proof-of-play record reported by a device after it
// finishes showing one content entry.
type PlaybackEvent struct {
	ID         int       `db:"id" json:"id"`
	CustomerID int       `db:"customer_id" json:"customer_id"`
	PlayerID   int       `db:"player_id" json:"player_id"`
	ContentID  int       `db:"content_id" json:"content_id"`
	StartedAt  time.Time `db:"started_at" json:"started_at"`
	EndedAt    time.Time `db:"ended_at" json:"ended_at"`
	Duration   int       `db:"duration" json:"duration"`
}

// ProofOfPlayRow aggregates playback per content over a reporting window.
type ProofOfPlayRow struct {
	ContentID    int    `db:"content_id" json:"content_id"`
	ContentName  string `db:"content_name" json:"content_name"`
	PlayCount    int    `db:"play_count" json:"play_count"`
	TotalSeconds int    `db:"total_seconds" json:"total_seconds"`
}

// PlayerActivityRow aggregates per-player playback over a reporting window.
type PlayerActivityRow struct {
	PlayerID   int        `db:"player_id" json:"player_id"`
	PlayerName string     `db:"player_name" json:"player_name"`
	PlayCount  int        `db:"play_count" json:"play_count"`
	LastSeenAt *time.Time `db:"last_seen_at" json:"last_seen_at"`
}
