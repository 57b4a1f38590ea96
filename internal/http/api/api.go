package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helioscast/helios/internal/http/middleware"
	"github.com/helioscast/helios/internal/model"
)

// APIError carries the HTTP status and message a handler wants returned.
// ErrCode optionally adds a machine-readable code; the device envelope
// uses it to distinguish the two 404 flavors ("no_active_schedule" vs
// "player_not_found") that share a status but call for different fallback
// behavior on the device.
type APIError struct {
	Code    int
	Message string
	ErrCode string
}

// Envelope is the device-facing response wrapper.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// HandlerFuncWithAuth handles a request on behalf of an authenticated CMS
// user; HandlerFuncWithPlayer does the same for a device principal.
// HandlerFunc is for public endpoints.
type HandlerFuncWithAuth func(ctx *gin.Context, user *model.User) (any, *APIError)
type HandlerFuncWithPlayer func(ctx *gin.Context, player *model.Player) (any, *APIError)
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		result, apiErr := h(ctx, user)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

func ResolveEndpointWithPlayer(h HandlerFuncWithPlayer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		player, ok := middleware.GetCurrentPlayer(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, Envelope{Status: "error", Message: "unauthorized"})
			return
		}

		result, apiErr := h(ctx, player)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, Envelope{Status: "error", Message: apiErr.Message, Code: apiErr.ErrCode})
			return
		}

		ctx.JSON(http.StatusOK, Envelope{Status: "success", Data: result})
	}
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

// ResolvePublicDeviceEndpoint wraps unauthenticated device endpoints
// (pairing) in the same envelope the rest of the device API uses.
func ResolvePublicDeviceEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, Envelope{Status: "error", Message: apiErr.Message, Code: apiErr.ErrCode})
			return
		}

		ctx.JSON(http.StatusOK, Envelope{Status: "success", Data: result})
	}
}
