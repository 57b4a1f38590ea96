// Package webhook delivers event notifications to customer-registered
// endpoints. Delivery is fire-and-forget: one signed POST per hook, no
// retries, failures are logged and dropped.
package webhook

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/model"
)

// HookSource is the slice of the store the dispatcher needs.
type HookSource interface {
	ActiveWebhooksForEvent(customerID int, event string) ([]model.Webhook, error)
}

type Dispatcher struct {
	source HookSource
	client *http.Client
}

type envelope struct {
	ID        string `json:"id"`
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data"`
}

func NewDispatcher(source HookSource) *Dispatcher {
	return &Dispatcher{
		source: source,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Emit fans an event out to every active hook subscribed to it. Each
// delivery runs in its own goroutine; Emit returns immediately.
func (d *Dispatcher) Emit(customerID int, event string, data any) {
	hooks, err := d.source.ActiveWebhooksForEvent(customerID, event)
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to list webhooks for event")
		return
	}
	if len(hooks) == 0 {
		return
	}

	body, err := json.Marshal(envelope{
		ID:        uuid.NewString(),
		Event:     event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	})
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to marshal webhook payload")
		return
	}

	for _, hook := range hooks {
		go d.deliver(hook, event, body)
	}
}

func (d *Dispatcher) deliver(hook model.Webhook, event string, body []byte) {
	req, err := http.NewRequest(http.MethodPost, hook.URL, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Str("url", hook.URL).Msg("failed to build webhook request")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Helios-Event", event)
	req.Header.Set("X-Helios-Signature", Sign(hook.Secret, body))

	resp, err := d.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("url", hook.URL).Str("event", event).Msg("webhook delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Str("url", hook.URL).Str("event", event).Msg("webhook endpoint rejected delivery")
	}
}

// Sign computes the hex HMAC-SHA256 of the body under the hook secret;
// receivers recompute it to authenticate the delivery.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
