package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/api"
	"github.com/helioscast/helios/internal/http/api/admin/packets"
	"github.com/helioscast/helios/internal/model"
)

type LayoutController struct {
	store db.Store
}

func LayoutModule(store db.Store) api.Module {
	ctl := &LayoutController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/layouts", ctl.listLayouts)
		c.POST("/layouts", ctl.createLayout)
		c.GET("/layouts/:id", ctl.getLayout)
		c.PATCH("/layouts/:id", ctl.updateLayout)
		c.DELETE("/layouts/:id", ctl.deleteLayout)

		c.POST("/layouts/:id/layers", ctl.createLayer)
		c.PATCH("/layouts/:id/layers/:layer_id", ctl.updateLayer)
		c.DELETE("/layouts/:id/layers/:layer_id", ctl.deleteLayer)
	})
}

func validLayerType(t string) bool {
	for _, known := range model.LayerTypes {
		if t == known {
			return true
		}
	}
	return false
}

// checkPlaylistRef rejects a playlist-layer config whose playlist_id does
// not resolve to a playlist owned by the caller's tenant. Without this a
// layer could be pointed at another customer's playlist and serve its
// content during expansion.
func (l *LayoutController) checkPlaylistRef(layerType string, config json.RawMessage, customerID int) *api.APIError {
	ref, ok := (model.Layer{Type: layerType, Config: config}).PlaylistRef()
	if !ok {
		return nil
	}
	playlist, err := l.store.GetPlaylistByID(ref)
	if err != nil || playlist.CustomerID != customerID {
		return &api.APIError{Code: http.StatusNotFound, Message: "playlist not found"}
	}
	return nil
}

func (l *LayoutController) listLayouts(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := l.store.ListLayouts(user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list layouts"}
	}
	return list, nil
}

func (l *LayoutController) createLayout(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateLayoutRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	background := request.BackgroundColor
	if background == "" {
		background = "#000000"
	}

	layout, err := l.store.CreateLayout(user.CustomerID, request.Name, request.Width, request.Height, background, request.Tags)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create layout"}
	}
	return layout, nil
}

func (l *LayoutController) getLayout(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	layout, err := l.store.GetLayoutByID(id, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "layout not found"}
	}
	return layout, nil
}

func (l *LayoutController) updateLayout(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := l.store.GetLayoutByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "layout not found"}
	}

	var request packets.UpdateLayoutRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := l.store.UpdateLayout(id, user.CustomerID, request.Name, request.Width, request.Height, request.BackgroundColor, request.Tags); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update layout"}
	}

	updated, err := l.store.GetLayoutByID(id, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load layout"}
	}
	return updated, nil
}

func (l *LayoutController) deleteLayout(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := l.store.GetLayoutByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "layout not found"}
	}

	if err := l.store.DeleteLayout(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete layout"}
	}
	return gin.H{"message": "deleted"}, nil
}

func (l *LayoutController) createLayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	layoutID, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := l.store.GetLayoutByID(layoutID, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "layout not found"}
	}

	var request packets.CreateLayerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if !validLayerType(request.Type) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown layer type"}
	}
	if apiErr := l.checkPlaylistRef(request.Type, request.Config, user.CustomerID); apiErr != nil {
		return nil, apiErr
	}

	opacity := 1.0
	if request.Opacity != nil {
		opacity = *request.Opacity
	}
	visible := true
	if request.Visible != nil {
		visible = *request.Visible
	}

	layer, err := l.store.CreateLayer(layoutID, model.Layer{
		Type:     request.Type,
		X:        request.X,
		Y:        request.Y,
		Width:    request.Width,
		Height:   request.Height,
		Rotation: request.Rotation,
		Opacity:  opacity,
		ZIndex:   request.ZIndex,
		Visible:  visible,
		Locked:   request.Locked,
		Config:   request.Config,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create layer"}
	}
	return layer, nil
}

func (l *LayoutController) updateLayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	layoutID, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	layerID, apiErr := pathID(ctx, "layer_id")
	if apiErr != nil {
		return nil, apiErr
	}

	layout, err := l.store.GetLayoutByID(layoutID, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "layout not found"}
	}

	var request packets.UpdateLayerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if len(request.Config) > 0 {
		var layerType string
		for _, layer := range layout.Layers {
			if layer.ID == layerID {
				layerType = layer.Type
				break
			}
		}
		if layerType == "" {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "layer not found"}
		}
		if apiErr := l.checkPlaylistRef(layerType, request.Config, user.CustomerID); apiErr != nil {
			return nil, apiErr
		}
	}

	patch := model.LayerPatch{
		X:        request.X,
		Y:        request.Y,
		Width:    request.Width,
		Height:   request.Height,
		Rotation: request.Rotation,
		Opacity:  request.Opacity,
		ZIndex:   request.ZIndex,
		Visible:  request.Visible,
		Locked:   request.Locked,
		Config:   request.Config,
	}
	if err := l.store.UpdateLayer(layerID, layoutID, patch); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update layer"}
	}
	return gin.H{"message": "updated"}, nil
}

func (l *LayoutController) deleteLayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	layoutID, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	layerID, apiErr := pathID(ctx, "layer_id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := l.store.GetLayoutByID(layoutID, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "layout not found"}
	}

	if err := l.store.DeleteLayer(layerID, layoutID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete layer"}
	}
	return gin.H{"message": "deleted"}, nil
}
