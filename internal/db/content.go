package db

import (
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/model"
)

const contentColumns = `
	id, customer_id, name, type, file_url, mime_type, file_size,
	width, height, thumbnail_url, default_duration, created_at, updated_at`

func (s *pgStore) CreateContent(customerID int, name, contentType, fileURL string, mimeType *string, fileSize *int64, defaultDuration *int) (model.Content, error) {
	var c model.Content
	const q = `
	INSERT INTO content
	  (customer_id, name, type, file_url, mime_type, file_size, default_duration, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	RETURNING ` + contentColumns + `;`
	if err := s.db.Get(&c, q, customerID, name, contentType, fileURL, mimeType, fileSize, defaultDuration); err != nil {
		log.Error().Err(err).Msg("CreateContent failed")
		return model.Content{}, err
	}
	return c, nil
}

func (s *pgStore) GetContentByID(id, customerID int) (model.Content, error) {
	var c model.Content
	const q = `SELECT ` + contentColumns + ` FROM content WHERE id = $1 AND customer_id = $2;`
	if err := s.db.Get(&c, q, id, customerID); err != nil {
		return model.Content{}, notFound(err)
	}
	return c, nil
}

func (s *pgStore) ListContent(customerID int) ([]model.Content, error) {
	var out []model.Content
	const q = `SELECT ` + contentColumns + ` FROM content WHERE customer_id = $1 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID); err != nil {
		log.Error().Err(err).Msg("ListContent failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateContent(id, customerID int, name *string, defaultDuration *int) error {
	_, err := s.db.Exec(`
	UPDATE content
	   SET name             = COALESCE($3, name),
	       default_duration = COALESCE($4, default_duration),
	       updated_at       = now()
	 WHERE id = $1 AND customer_id = $2;`, id, customerID, name, defaultDuration)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("UpdateContent failed")
	}
	return err
}

func (s *pgStore) DeleteContent(id, customerID int) error {
	_, err := s.db.Exec(`DELETE FROM content WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("DeleteContent failed")
	}
	return err
}
