package db

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/model"
)

func (s *pgStore) CreateWebhook(customerID int, url, secret string, events []string) (model.Webhook, error) {
	var w model.Webhook
	const q = `
	INSERT INTO webhooks (customer_id, url, secret, events, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, true, now(), now())
	RETURNING id, customer_id, url, secret, events, is_active, created_at, updated_at;`
	if err := s.db.Get(&w, q, customerID, url, secret, pq.StringArray(events)); err != nil {
		log.Error().Err(err).Msg("CreateWebhook failed")
		return model.Webhook{}, err
	}
	return w, nil
}

func (s *pgStore) ListWebhooks(customerID int) ([]model.Webhook, error) {
	var out []model.Webhook
	const q = `
	SELECT id, customer_id, url, secret, events, is_active, created_at, updated_at
	  FROM webhooks
	 WHERE customer_id = $1
	 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID); err != nil {
		log.Error().Err(err).Msg("ListWebhooks failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) GetWebhookByID(id, customerID int) (model.Webhook, error) {
	var w model.Webhook
	const q = `
	SELECT id, customer_id, url, secret, events, is_active, created_at, updated_at
	  FROM webhooks
	 WHERE id = $1 AND customer_id = $2;`
	if err := s.db.Get(&w, q, id, customerID); err != nil {
		return model.Webhook{}, notFound(err)
	}
	return w, nil
}

func (s *pgStore) UpdateWebhook(id, customerID int, url *string, events []string, isActive *bool) error {
	var eventsArg interface{}
	if events != nil {
		eventsArg = pq.StringArray(events)
	}
	_, err := s.db.Exec(`
	UPDATE webhooks
	   SET url        = COALESCE($3, url),
	       events     = COALESCE($4, events),
	       is_active  = COALESCE($5, is_active),
	       updated_at = now()
	 WHERE id = $1 AND customer_id = $2;`, id, customerID, url, eventsArg, isActive)
	if err != nil {
		log.Error().Err(err).Int("webhook_id", id).Msg("UpdateWebhook failed")
	}
	return err
}

func (s *pgStore) DeleteWebhook(id, customerID int) error {
	_, err := s.db.Exec(`DELETE FROM webhooks WHERE id = $1 AND customer_id = $2;`, id, customerID)
	if err != nil {
		log.Error().Err(err).Int("webhook_id", id).Msg("DeleteWebhook failed")
	}
	return err
}

func (s *pgStore) ActiveWebhooksForEvent(customerID int, event string) ([]model.Webhook, error) {
	var out []model.Webhook
	const q = `
	SELECT id, customer_id, url, secret, events, is_active, created_at, updated_at
	  FROM webhooks
	 WHERE customer_id = $1
	   AND is_active = true
	   AND $2 = ANY(events)
	 ORDER BY id;`
	if err := s.db.Select(&out, q, customerID, event); err != nil {
		log.Error().Err(err).Str("event", event).Msg("ActiveWebhooksForEvent failed")
		return nil, err
	}
	return out, nil
}
