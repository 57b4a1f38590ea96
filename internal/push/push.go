// Package push notifies player devices over MQTT that their state on the
// server changed, so they re-fetch their schedule instead of waiting for
// the next poll.
package push

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

type Notifier struct {
	mu     sync.Mutex
	client mqtt.Client
}

type command struct {
	Command string `json:"command"`
	SentAt  string `json:"sent_at"`
}

// NewNotifier connects to the broker; a broken broker is logged and
// tolerated, pushes just become no-ops until the client reconnects.
func NewNotifier(brokerURL string) (*Notifier, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID("helios-server")
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Warn().Err(err).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &Notifier{client: client}, nil
}

// NotifyRefresh tells one device to re-fetch its schedule.
func (n *Notifier) NotifyRefresh(deviceUID string) {
	if n == nil {
		return
	}
	payload, _ := json.Marshal(command{Command: "refresh", SentAt: time.Now().UTC().Format(time.RFC3339)})
	topic := fmt.Sprintf("players/%s/commands", deviceUID)

	n.mu.Lock()
	defer n.mu.Unlock()
	token := n.client.Publish(topic, 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		log.Error().Err(token.Error()).Str("device_uid", deviceUID).Msg("failed to publish refresh command")
	}
}

// Close disconnects from the broker.
func (n *Notifier) Close() {
	if n == nil {
		return
	}
	n.client.Disconnect(250)
}
