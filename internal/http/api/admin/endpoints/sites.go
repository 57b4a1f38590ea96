package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/api"
	"github.com/helioscast/helios/internal/http/api/admin/packets"
	"github.com/helioscast/helios/internal/model"
)

type SiteController struct {
	store db.Store
}

func SiteModule(store db.Store) api.Module {
	ctl := &SiteController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/sites", ctl.listSites)
		c.POST("/sites", ctl.createSite)
		c.GET("/sites/:id", ctl.getSite)
		c.PATCH("/sites/:id", ctl.updateSite)
		c.DELETE("/sites/:id", ctl.deleteSite)
	})
}

func pathID(ctx *gin.Context, name string) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid " + name}
	}
	return id, nil
}

func (s *SiteController) listSites(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := s.store.ListSites(user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list sites"}
	}
	return list, nil
}

func (s *SiteController) createSite(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateSiteRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	site, err := s.store.CreateSite(user.CustomerID, request.Name, request.Location, request.Timezone)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create site"}
	}
	return site, nil
}

func (s *SiteController) getSite(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	site, err := s.store.GetSiteByID(id, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "site not found"}
	}
	return site, nil
}

func (s *SiteController) updateSite(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := s.store.GetSiteByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "site not found"}
	}

	var request packets.UpdateSiteRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := s.store.UpdateSite(id, user.CustomerID, request.Name, request.Location, request.Timezone); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update site"}
	}

	updated, err := s.store.GetSiteByID(id, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load site"}
	}
	return updated, nil
}

func (s *SiteController) deleteSite(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := s.store.GetSiteByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "site not found"}
	}

	if err := s.store.DeleteSite(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete site"}
	}
	return gin.H{"message": "deleted"}, nil
}
