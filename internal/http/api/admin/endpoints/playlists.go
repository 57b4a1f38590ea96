package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/api"
	"github.com/helioscast/helios/internal/http/api/admin/packets"
	"github.com/helioscast/helios/internal/model"
)

type PlaylistController struct {
	store db.Store
}

func PlaylistModule(store db.Store) api.Module {
	ctl := &PlaylistController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/playlists", ctl.listPlaylists)
		c.POST("/playlists", ctl.createPlaylist)
		c.GET("/playlists/:id", ctl.getPlaylist)
		c.PATCH("/playlists/:id", ctl.updatePlaylist)
		c.DELETE("/playlists/:id", ctl.deletePlaylist)

		c.POST("/playlists/:id/items", ctl.addItem)
		c.PATCH("/playlists/:id/items/:item_id", ctl.updateItem)
		c.DELETE("/playlists/:id/items/:item_id", ctl.removeItem)
		c.PUT("/playlists/:id/reorder", ctl.reorderItems)
	})
}

// ownedPlaylist loads a playlist and checks it belongs to the caller's
// tenant, because GetPlaylistByID itself is tenant-agnostic (the schedule
// expander also uses it).
func (p *PlaylistController) ownedPlaylist(id int, user *model.User) (*model.Playlist, *api.APIError) {
	playlist, err := p.store.GetPlaylistByID(id)
	if err != nil || playlist.CustomerID != user.CustomerID {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "playlist not found"}
	}
	return &playlist, nil
}

func (p *PlaylistController) listPlaylists(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := p.store.ListPlaylists(user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list playlists"}
	}
	return list, nil
}

func (p *PlaylistController) createPlaylist(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreatePlaylistRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	playlist, err := p.store.CreatePlaylist(user.CustomerID, request.Name)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create playlist"}
	}
	return playlist, nil
}

func (p *PlaylistController) getPlaylist(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	playlist, apiErr := p.ownedPlaylist(id, user)
	if apiErr != nil {
		return nil, apiErr
	}
	return playlist, nil
}

func (p *PlaylistController) updatePlaylist(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if _, apiErr := p.ownedPlaylist(id, user); apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdatePlaylistRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := p.store.UpdatePlaylist(id, user.CustomerID, request.Name, request.IsActive); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update playlist"}
	}

	updated, err := p.store.GetPlaylistByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load playlist"}
	}
	return updated, nil
}

func (p *PlaylistController) deletePlaylist(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if _, apiErr := p.ownedPlaylist(id, user); apiErr != nil {
		return nil, apiErr
	}

	if err := p.store.DeletePlaylist(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete playlist"}
	}
	return gin.H{"message": "deleted"}, nil
}

func (p *PlaylistController) addItem(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	if _, apiErr := p.ownedPlaylist(id, user); apiErr != nil {
		return nil, apiErr
	}

	var request packets.AddPlaylistItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := p.store.GetContentByID(request.ContentID, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "content not found"}
	}

	item, err := p.store.AddPlaylistItem(id, request.ContentID, request.DisplayOrder, request.Duration, request.TransitionType, request.TransitionDuration)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not add item"}
	}
	return item, nil
}

func (p *PlaylistController) updateItem(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	itemID, apiErr := pathID(ctx, "item_id")
	if apiErr != nil {
		return nil, apiErr
	}
	if _, apiErr := p.ownedPlaylist(id, user); apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdatePlaylistItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := p.store.UpdatePlaylistItem(itemID, request.DisplayOrder, request.Duration, request.TransitionType, request.TransitionDuration); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update item"}
	}
	return gin.H{"message": "updated"}, nil
}

func (p *PlaylistController) removeItem(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	itemID, apiErr := pathID(ctx, "item_id")
	if apiErr != nil {
		return nil, apiErr
	}
	if _, apiErr := p.ownedPlaylist(id, user); apiErr != nil {
		return nil, apiErr
	}

	if err := p.store.RemovePlaylistItem(itemID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not remove item"}
	}
	return gin.H{"message": "deleted"}, nil
}

func (p *PlaylistController) reorderItems(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}
	playlist, apiErr := p.ownedPlaylist(id, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.ReorderPlaylistRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if len(request.ItemIDs) != len(playlist.Items) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "item_ids must cover every playlist item"}
	}

	if err := p.store.ReorderPlaylistItems(id, request.ItemIDs); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reorder items"}
	}

	updated, err := p.store.GetPlaylistByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load playlist"}
	}
	return updated, nil
}
