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

type WebhookController struct {
	store db.Store
}

func WebhookModule(store db.Store) api.Module {
	ctl := &WebhookController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/webhooks", ctl.listWebhooks)
		c.POST("/webhooks", ctl.createWebhook)
		c.GET("/webhooks/:id", ctl.getWebhook)
		c.PATCH("/webhooks/:id", ctl.updateWebhook)
		c.DELETE("/webhooks/:id", ctl.deleteWebhook)
	})
}

var knownEvents = map[string]bool{
	model.EventScheduleCreated: true,
	model.EventScheduleUpdated: true,
	model.EventScheduleDeleted: true,
	model.EventContentCreated:  true,
	model.EventContentDeleted:  true,
	model.EventPlayerPaired:    true,
	model.EventPlayerOffline:   true,
}

func checkEvents(events []string) *api.APIError {
	for _, e := range events {
		if !knownEvents[e] {
			return &api.APIError{Code: http.StatusBadRequest, Message: "unknown event: " + e}
		}
	}
	return nil
}

func webhookResponse(w model.Webhook) packets.WebhookResponse {
	return packets.WebhookResponse{
		ID:        w.ID,
		URL:       w.URL,
		Events:    w.Events,
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
		UpdatedAt: w.UpdatedAt.Format(time.RFC3339),
	}
}

func (w *WebhookController) listWebhooks(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	hooks, err := w.store.ListWebhooks(user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list webhooks"}
	}
	out := make([]packets.WebhookResponse, 0, len(hooks))
	for _, h := range hooks {
		out = append(out, webhookResponse(h))
	}
	return out, nil
}

func (w *WebhookController) createWebhook(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateWebhookRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if apiErr := checkEvents(request.Events); apiErr != nil {
		return nil, apiErr
	}

	hook, err := w.store.CreateWebhook(user.CustomerID, request.URL, request.Secret, request.Events)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create webhook"}
	}
	return webhookResponse(hook), nil
}

func (w *WebhookController) getWebhook(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	hook, err := w.store.GetWebhookByID(id, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "webhook not found"}
	}
	return webhookResponse(hook), nil
}

func (w *WebhookController) updateWebhook(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := w.store.GetWebhookByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "webhook not found"}
	}

	var request packets.UpdateWebhookRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if apiErr := checkEvents(request.Events); apiErr != nil {
		return nil, apiErr
	}

	if err := w.store.UpdateWebhook(id, user.CustomerID, request.URL, request.Events, request.IsActive); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update webhook"}
	}

	updated, err := w.store.GetWebhookByID(id, user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load webhook"}
	}
	return webhookResponse(updated), nil
}

func (w *WebhookController) deleteWebhook(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx, "id")
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := w.store.GetWebhookByID(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "webhook not found"}
	}

	if err := w.store.DeleteWebhook(id, user.CustomerID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete webhook"}
	}
	return gin.H{"message": "deleted"}, nil
}
