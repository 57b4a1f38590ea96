package endpoints

import (
	"crypto/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/http/api"
	"github.com/helioscast/helios/internal/http/api/device/packets"
	redisclient "github.com/helioscast/helios/internal/redis"
)

// PairingModule mounts the unauthenticated pairing flow. A device asks for
// a short code, shows it on screen, and polls until an admin claims the
// code and a token is parked for it.
func PairingModule() api.Module {
	ctl := &PairingController{}
	return api.ModuleFunc(func(c *api.Controller) {
		c.DEVICE_PUBLIC_POST("/pair/request", ctl.requestCode)
		c.DEVICE_PUBLIC_POST("/pair/poll", ctl.poll)
	})
}

type PairingController struct{}

// Ambiguous characters (0/O, 1/I) are left out so the code survives being
// read off a TV screen.
const codeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
const codeLength = 6

func newPairingCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}
	return string(buf), nil
}

// POST /api/v1/player-devices/pair/request
func (p *PairingController) requestCode(ctx *gin.Context) (any, *api.APIError) {
	var request packets.PairRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	code, err := newPairingCode()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate pairing code"}
	}
	deviceUID := uuid.NewString()

	if err := redisclient.StorePairingCode(ctx, code, deviceUID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store pairing code"}
	}

	log.Info().Str("device_uid", deviceUID).Str("model", request.Model).Msg("pairing code issued")
	return packets.PairCodeResponse{DeviceUID: deviceUID, Code: code, ExpiresIn: 600}, nil
}

// POST /api/v1/player-devices/pair/poll
func (p *PairingController) poll(ctx *gin.Context) (any, *api.APIError) {
	var request packets.PairPollRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	token, err := redisclient.TakeDeviceToken(ctx, request.DeviceUID)
	if err == goredis.Nil {
		return packets.PairPollResponse{Paired: false}, nil
	}
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not check pairing state"}
	}

	return packets.PairPollResponse{Paired: true, Token: token}, nil
}
