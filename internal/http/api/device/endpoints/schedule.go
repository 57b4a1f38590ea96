package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/api"
	"github.com/helioscast/helios/internal/model"
	"github.com/helioscast/helios/internal/schedule"
)

// Device-envelope error codes. Devices branch on these: player_not_found
// means re-pair, no_active_schedule means show the idle screen.
const (
	codePlayerNotFound   = "player_not_found"
	codeNoActiveSchedule = "no_active_schedule"
)

type ScheduleController struct {
	store  db.Store
	engine *schedule.Engine
}

func ScheduleModule(store db.Store) api.Module {
	ctl := &ScheduleController{store: store, engine: schedule.NewEngine(store)}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PLAYER_GET("/:id/schedule", ctl.currentSchedule)
	})
}

// GET /api/v1/player-devices/:id/schedule
// Returns the winning schedule for the calling device, expanded into the
// flattened content sequence it should play right now.
func (s *ScheduleController) currentSchedule(ctx *gin.Context, player *model.Player) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if id != player.ID {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "player not found", ErrCode: codePlayerNotFound}
	}

	payload, err := s.engine.CurrentPayload(*player)
	if errors.Is(err, schedule.ErrNoActiveSchedule) {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no active schedule", ErrCode: codeNoActiveSchedule}
	}
	if errors.Is(err, db.ErrNotFound) {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "layout not found"}
	}
	if err != nil {
		log.Error().Err(err).Int("player_id", player.ID).Msg("schedule resolution failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not resolve schedule"}
	}

	return payload, nil
}
