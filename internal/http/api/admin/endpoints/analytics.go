package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/api"
	"github.com/helioscast/helios/internal/http/api/admin/packets"
	"github.com/helioscast/helios/internal/model"
)

type AnalyticsController struct {
	store db.Store
}

func AnalyticsModule(store db.Store) api.Module {
	ctl := &AnalyticsController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/analytics/proof-of-play", ctl.proofOfPlay)
		c.GET("/analytics/player-activity", ctl.playerActivity)
	})
}

// reportingWindow parses ?from=&to= query dates; "to" is widened to the end
// of its day so both bounds are inclusive.
func reportingWindow(ctx *gin.Context) (time.Time, time.Time, *api.APIError) {
	var query packets.AnalyticsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return time.Time{}, time.Time{}, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	from, err := time.Parse("2006-01-02", query.From)
	if err != nil {
		return time.Time{}, time.Time{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid from date, want YYYY-MM-DD"}
	}
	to, err := time.Parse("2006-01-02", query.To)
	if err != nil {
		return time.Time{}, time.Time{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid to date, want YYYY-MM-DD"}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, &api.APIError{Code: http.StatusBadRequest, Message: "to precedes from"}
	}

	return from, to.Add(24*time.Hour - time.Second), nil
}

func (a *AnalyticsController) proofOfPlay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	from, to, apiErr := reportingWindow(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	rows, err := a.store.ProofOfPlay(user.CustomerID, from, to)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to build proof-of-play report"}
	}
	return rows, nil
}

func (a *AnalyticsController) playerActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	from, to, apiErr := reportingWindow(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	rows, err := a.store.PlayerActivity(user.CustomerID, from, to)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to build player activity report"}
	}
	return rows, nil
}
