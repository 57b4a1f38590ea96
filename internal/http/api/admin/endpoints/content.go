package endpoints

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/api"
	"github.com/helioscast/helios/internal/http/api/admin/packets"
	"github.com/helioscast/helios/internal/model"
	"github.com/helioscast/helios/internal/storage"
	"github.com/helioscast/helios/internal/webhook"
)

type ContentController struct {
	store db.Store
	files storage.Storage
	hooks *webhook.Dispatcher
}

func ContentModule(store db.Store, files storage.Storage, hooks *webhook.Dispatcher) api.Module {
	ctl := &ContentController{store: store, files: files, hooks: hooks}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/content", ctl.listContent)
		c.POST("/content", ctl.uploadContent)
		c.GET("/content/:id", ctl.getContent)
		c.PATCH("/content/:id", ctl.updateContent)
		c.DELETE("/content/:id", ctl.deleteContent)
	})
}

// contentTypeFromMime maps an upload's MIME type onto the coarse content
// categories players understand.
func contentTypeFromMime(mime string) string {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return "image"
	case strings.HasPrefix(mime, "video/"):
		return "video"
	case mime == "application/pdf":
		return "pdf"
	case mime == "text/html":
		return "html"
	default:
		return "file"
	}
}

func (c *ContentController) listContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := c.store.ListContent(user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list content"}
	}
	return list, nil
}

// POST /api/v1/admin/content
// Multipart upload: "file" is the asset, optional "name" and
// "default_duration" form fields override the defaults.
func (c *ContentController) uploadContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "file is required"}
	}

	name := ctx.PostForm("name")
	if name == "" {
		name = fileHeader.Filename
	}

	var defaultDuration *int
	if raw := ctx.PostForm("default_duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid default_duration"}
		}
		defaultDuration = &parsed
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	fileURL, err := c.files.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to store upload")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store file"}
	}

	size := fileHeader.Size
	content, err := c.store.CreateContent(user.CustomerID, name, contentTypeFromMime(mimeType), fileURL, &mimeType, &size, defaultDuration)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create content"}
	}

	c.hooks.Emit(user.CustomerID, model.EventContentCreated, content)
	return content, nil
}

func (c *ContentController) getContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	content, err := c.store.GetContentByID(id, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "content not found"}
	}
	return content, nil
}

func (c *ContentController) updateContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := c.store.GetContentByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "content not found"}
	}

	var request packets.UpdateContentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := c.store.UpdateContent(id, user.CustomerID, request.Name, request.DefaultDuration); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update content"}
	}

	updated, err := c.store.GetContentByID(id, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load content"}
	}
	return updated, nil
}

func (c *ContentController) deleteContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := c.store.GetContentByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "content not found"}
	}

	if err := c.store.DeleteContent(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete content"}
	}

	c.hooks.Emit(user.CustomerID, model.EventContentDeleted, gin.H{"content_id": id})
	return gin.H{"message": "deleted"}, nil
}
