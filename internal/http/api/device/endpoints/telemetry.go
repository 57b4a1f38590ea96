package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/api"
	"github.com/helioscast/helios/internal/http/api/device/packets"
	"github.com/helioscast/helios/internal/model"
)

type TelemetryController struct {
	store db.Store
}

func TelemetryModule(store db.Store) api.Module {
	ctl := &TelemetryController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PLAYER_POST("/:id/heartbeat", ctl.heartbeat)
		c.PLAYER_POST("/:id/events", ctl.reportEvents)
	})
}

func pathID(ctx *gin.Context, name string) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid " + name}
	}
	return id, nil
}

// POST /api/v1/player-devices/:id/heartbeat
func (t *TelemetryController) heartbeat(ctx *gin.Context, player *model.Player) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if id != player.ID {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "player not found", ErrCode: codePlayerNotFound}
	}

	var request packets.HeartbeatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := t.store.RecordPlayerHeartbeat(player.ID, request.ScreenWidth, request.ScreenHeight); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not record heartbeat"}
	}
	return gin.H{"acknowledged": true}, nil
}

// POST /api/v1/player-devices/:id/events
// Devices batch proof-of-play records and flush them periodically.
func (t *TelemetryController) reportEvents(ctx *gin.Context, player *model.Player) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if id != player.ID {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "player not found", ErrCode: codePlayerNotFound}
	}

	var request packets.ReportEventsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	events := make([]model.PlaybackEvent, 0, len(request.Events))
	for _, e := range request.Events {
		startedAt, err := time.Parse(time.RFC3339, e.StartedAt)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid started_at, want RFC3339"}
		}
		endedAt, err := time.Parse(time.RFC3339, e.EndedAt)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid ended_at, want RFC3339"}
		}
		if endedAt.Before(startedAt) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "ended_at precedes started_at"}
		}
		events = append(events, model.PlaybackEvent{
			ContentID: e.ContentID,
			StartedAt: startedAt,
			EndedAt:   endedAt,
			Duration:  e.Duration,
		})
	}

	if err := t.store.InsertPlaybackEvents(player.CustomerID, player.ID, events); err != nil {
		log.Error().Err(err).Int("player_id", player.ID).Int("count", len(events)).Msg("failed to insert playback events")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not record events"}
	}

	return gin.H{"recorded": len(events)}, nil
}
