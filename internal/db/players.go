package db

import (
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/model"
)

const playerColumns = `
	id, customer_id, site_id, name, device_uid, paired,
	screen_width, screen_height, last_seen_at, created_at, updated_at`

func (s *pgStore) CreatePlayer(customerID, siteID int, name string) (model.Player, error) {
	var p model.Player
	const q = `
	INSERT INTO players (customer_id, site_id, name, paired, created_at, updated_at)
	VALUES ($1, $2, $3, false, now(), now())
	RETURNING ` + playerColumns + `;`
	if err := s.db.Get(&p, q, customerID, siteID, name); err != nil {
		log.Error().Err(err).Msg("CreatePlayer failed")
		return model.Player{}, err
	}
	return p, nil
}

func (s *pgStore) GetPlayerByID(id, customerID int) (model.Player, error) {
	var p model.Player
	const q = `SELECT ` + playerColumns + ` FROM players WHERE id = $1 AND customer_id = $2;`
	if err := s.db.Get(&p, q, id, customerID); err != nil {
		return model.Player{}, notFound(err)
	}
	return p, nil
}

func (s *pgStore) GetPlayerByDeviceUID(deviceUID string) (model.Player, error) {
	var p model.Player
	const q = `SELECT ` + playerColumns + ` FROM players WHERE device_uid = $1;`
	if err := s.db.Get(&p, q, deviceUID); err != nil {
		return model.Player{}, notFound(err)
	}
	return p, nil
}

func (s *pgStore) ListPlayers(customerID int) ([]model.Player, error) {
	var out []model.Player
	const q = `SELECT ` + playerColumns + ` FROM players WHERE customer_id = $1 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID); err != nil {
		log.Error().Err(err).Msg("ListPlayers failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdatePlayer(id, customerID int, name *string, siteID *int) error {
	_, err := s.db.Exec(`
	UPDATE players
	   SET name       = COALESCE($3, name),
	       site_id    = COALESCE($4, site_id),
	       updated_at = now()
	 WHERE id = $1 AND customer_id = $2;`, id, customerID, name, siteID)
	if err != nil {
		log.Error().Err(err).Int("player_id", id).Msg("UpdatePlayer failed")
	}
	return err
}

func (s *pgStore) DeletePlayer(id, customerID int) error {
	_, err := s.db.Exec(`DELETE FROM players WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("player_id", id).Msg("DeletePlayer failed")
	}
	return err
}

func (s *pgStore) PairPlayer(id, customerID int, deviceUID string) error {
	_, err := s.db.Exec(`
	UPDATE players
	   SET device_uid = $3, paired = true, updated_at = now()
	 WHERE id = $1 AND customer_id = $2;`, id, customerID, deviceUID)
	if err != nil {
		log.Error().Err(err).Int("player_id", id).Msg("PairPlayer failed")
	}
	return err
}

func (s *pgStore) RecordPlayerHeartbeat(id int, width, height *int) error {
	_, err := s.db.Exec(`
	UPDATE players
	   SET last_seen_at  = now(),
	       screen_width  = COALESCE($2, screen_width),
	       screen_height = COALESCE($3, screen_height)
	 WHERE id = $1;`, id, width, height)
	if err != nil {
		log.Error().Err(err).Int("player_id", id).Msg("RecordPlayerHeartbeat failed")
	}
	return err
}
