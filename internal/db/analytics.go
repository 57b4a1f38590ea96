package db

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/model"
)

func (s *pgStore) InsertPlaybackEvents(customerID, playerID int, events []model.PlaybackEvent) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	for _, ev := range events {
		if _, err = tx.Exec(`
		INSERT INTO playback_events
		  (customer_id, player_id, content_id, started_at, ended_at, duration)
		VALUES ($1, $2, $3, $4, $5, $6);`,
			customerID, playerID, ev.ContentID, ev.StartedAt, ev.EndedAt, ev.Duration,
		); err != nil {
			log.Error().Err(err).Int("player_id", playerID).Msg("InsertPlaybackEvents failed")
			return err
		}
	}
	return nil
}

func (s *pgStore) ProofOfPlay(customerID int, from, to time.Time) ([]model.ProofOfPlayRow, error) {
	var out []model.ProofOfPlayRow
	const q = `
	SELECT e.content_id,
	       c.name AS content_name,
	       COUNT(*) AS play_count,
	       COALESCE(SUM(e.duration), 0) AS total_seconds
	  FROM playback_events e
	  JOIN content c ON c.id = e.content_id
	 WHERE e.customer_id = $1
	   AND e.started_at >= $2
	   AND e.started_at <  $3
	 GROUP BY e.content_id, c.name
	 ORDER BY play_count DESC, e.content_id;`
	if err := s.db.Select(&out, q, customerID, from, to); err != nil {
		log.Error().Err(err).Msg("ProofOfPlay failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) PlayerActivity(customerID int, from, to time.Time) ([]model.PlayerActivityRow, error) {
	var out []model.PlayerActivityRow
	const q = `
	SELECT p.id AS player_id,
	       p.name AS player_name,
	       COUNT(e.id) AS play_count,
	       p.last_seen_at
	  FROM players p
	  LEFT JOIN playback_events e
	    ON e.player_id = p.id
	   AND e.started_at >= $2
	   AND e.started_at <  $3
	 WHERE p.customer_id = $1
	 GROUP BY p.id, p.name, p.last_seen_at
	 ORDER BY p.id;`
	if err := s.db.Select(&out, q, customerID, from, to); err != nil {
		log.Error().Err(err).Msg("PlayerActivity failed")
		return nil, err
	}
	return out, nil
}
