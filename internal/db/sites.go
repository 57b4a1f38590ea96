package db

import (
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/model"
)

func (s *pgStore) CreateSite(customerID int, name string, location *string, timezone string) (model.Site, error) {
	var site model.Site
	const q = `
	INSERT INTO sites (customer_id, name, location, timezone, created_at, updated_at)
	VALUES ($1, $2, $3, $4, now(), now())
	RETURNING id, customer_id, name, location, timezone, created_at, updated_at;`
	if err := s.db.Get(&site, q, customerID, name, location, timezone); err != nil {
		log.Error().Err(err).Msg("CreateSite failed")
		return model.Site{}, err
	}
	return site, nil
}

func (s *pgStore) GetSiteByID(id, customerID int) (model.Site, error) {
	var site model.Site
	const q = `
	SELECT id, customer_id, name, location, timezone, created_at, updated_at
	  FROM sites
	 WHERE id = $1 AND customer_id = $2;`
	if err := s.db.Get(&site, q, id, customerID); err != nil {
		return model.Site{}, notFound(err)
	}
	return site, nil
}

func (s *pgStore) ListSites(customerID int) ([]model.Site, error) {
	var out []model.Site
	const q = `
	SELECT id, customer_id, name, location, timezone, created_at, updated_at
	  FROM sites
	 WHERE customer_id = $1
	 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID); err != nil {
		log.Error().Err(err).Msg("ListSites failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateSite(id, customerID int, name, location, timezone *string) error {
	_, err := s.db.Exec(`
	UPDATE sites
	   SET name       = COALESCE($3, name),
	       location   = COALESCE($4, location),
	       timezone   = COALESCE($5, timezone),
	       updated_at = now()
	 WHERE id = $1 AND customer_id = $2;`, id, customerID, name, location, timezone)
	if err != nil {
		log.Error().Err(err).Int("site_id", id).Msg("UpdateSite failed")
	}
	return err
}

func (s *pgStore) DeleteSite(id, customerID int) error {
	_, err := s.db.Exec(`DELETE FROM sites WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("site_id", id).Msg("DeleteSite failed")
	}
	return err
}
