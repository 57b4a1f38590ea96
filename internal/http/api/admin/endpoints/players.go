package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/api"
	"github.com/helioscast/helios/internal/http/api/admin/packets"
	"github.com/helioscast/helios/internal/http/middleware"
	"github.com/helioscast/helios/internal/model"
	"github.com/helioscast/helios/internal/push"
	redisclient "github.com/helioscast/helios/internal/redis"
	"github.com/helioscast/helios/internal/webhook"
)

type PlayerController struct {
	store           db.Store
	hooks           *webhook.Dispatcher
	notifier        *push.Notifier
	deviceJWTSecret string
}

func PlayerModule(store db.Store, hooks *webhook.Dispatcher, notifier *push.Notifier, deviceJWTSecret string) api.Module {
	ctl := &PlayerController{store: store, hooks: hooks, notifier: notifier, deviceJWTSecret: deviceJWTSecret}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/players", ctl.listPlayers)
		c.POST("/players", ctl.createPlayer)
		c.GET("/players/:id", ctl.getPlayer)
		c.PATCH("/players/:id", ctl.updatePlayer)
		c.DELETE("/players/:id", ctl.deletePlayer)
		c.POST("/players/:id/pair", ctl.pairPlayer)
	})
}

func (p *PlayerController) listPlayers(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := p.store.ListPlayers(user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list players"}
	}
	return list, nil
}

func (p *PlayerController) createPlayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreatePlayerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := p.store.GetSiteByID(request.SiteID, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "site not found"}
	}

	player, err := p.store.CreatePlayer(user.CustomerID, request.SiteID, request.Name)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create player"}
	}
	return player, nil
}

func (p *PlayerController) getPlayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	player, err := p.store.GetPlayerByID(id, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "player not found"}
	}
	return player, nil
}

func (p *PlayerController) updatePlayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := p.store.GetPlayerByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "player not found"}
	}

	var request packets.UpdatePlayerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.SiteID != nil {
		if _, err := p.store.GetSiteByID(*request.SiteID, user.CustomerID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "site not found"}
		}
	}

	if err := p.store.UpdatePlayer(id, user.CustomerID, request.Name, request.SiteID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update player"}
	}

	updated, err := p.store.GetPlayerByID(id, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load player"}
	}
	return updated, nil
}

func (p *PlayerController) deletePlayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := p.store.GetPlayerByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "player not found"}
	}

	if err := p.store.DeletePlayer(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete player"}
	}
	return gin.H{"message": "deleted"}, nil
}

// POST /api/v1/admin/players/:id/pair
// Claims a device's pairing code: the code resolves to the device uid the
// device registered in Redis, the player row is bound to that uid, and a
// device token is parked for the device to collect on its next poll.
func (p *PlayerController) pairPlayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	player, err := p.store.GetPlayerByID(id, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "player not found"}
	}

	var request packets.PairPlayerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	deviceUID, err := redisclient.ClaimPairingCode(ctx, request.Code)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "pairing code not found or expired"}
	}

	if err := p.store.PairPlayer(id, user.CustomerID, deviceUID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not pair player"}
	}

	token, err := middleware.GeneratePlayerJWT(player.ID, player.CustomerID, p.deviceJWTSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate device token"}
	}
	if err := redisclient.StoreDeviceToken(ctx, deviceUID, token); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not hand off device token"}
	}

	log.Info().Int("player_id", player.ID).Str("device_uid", deviceUID).Msg("player paired")
	p.hooks.Emit(user.CustomerID, model.EventPlayerPaired, gin.H{"player_id": player.ID})
	p.notifier.NotifyRefresh(deviceUID)

	return gin.H{"message": "paired"}, nil
}
