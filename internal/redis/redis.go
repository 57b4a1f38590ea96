package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

// Pairing state lives in Redis only: short codes and the one-shot token
// handoff both expire on their own if the flow is abandoned.
const pairingTTL = 10 * time.Minute

func Init(address, username, password string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     address,
		Username: username,
		Password: password,
		DB:       0,
	})
}

// StorePairingCode maps a short pairing code to the device uid that
// requested it.
func StorePairingCode(ctx context.Context, code, deviceUID string) error {
	if err := Rdb.Set(ctx, "pairing:code:"+code, deviceUID, pairingTTL).Err(); err != nil {
		log.Error().Err(err).Str("code", code).Msg("failed to store pairing code")
		return err
	}
	return nil
}

// ClaimPairingCode resolves a pairing code to its device uid and deletes
// it, so a code can only be claimed once.
func ClaimPairingCode(ctx context.Context, code string) (string, error) {
	key := "pairing:code:" + code
	deviceUID, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	Rdb.Del(ctx, key)
	return deviceUID, nil
}

// StoreDeviceToken parks a freshly minted device JWT for the device to
// collect on its next poll.
func StoreDeviceToken(ctx context.Context, deviceUID, token string) error {
	if err := Rdb.Set(ctx, "pairing:token:"+deviceUID, token, pairingTTL).Err(); err != nil {
		log.Error().Err(err).Str("device_uid", deviceUID).Msg("failed to store device token")
		return err
	}
	return nil
}

// TakeDeviceToken returns and deletes the parked token for a device, if
// one is waiting.
func TakeDeviceToken(ctx context.Context, deviceUID string) (string, error) {
	key := "pairing:token:" + deviceUID
	token, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	Rdb.Del(ctx, key)
	return token, nil
}
