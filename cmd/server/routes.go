package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/api"
	adminapi "github.com/helioscast/helios/internal/http/api/admin/endpoints"
	deviceapi "github.com/helioscast/helios/internal/http/api/device/endpoints"
	"github.com/helioscast/helios/internal/push"
	"github.com/helioscast/helios/internal/storage"
	"github.com/helioscast/helios/internal/webhook"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, storageSystem storage.Storage, hooks *webhook.Dispatcher, notifier *push.Notifier) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	// admin API: public auth endpoints, then everything behind the user JWT
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/v1/admin",
	},
		adminapi.AuthPublicModule(env.UserJWTSecret, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/v1/admin",
		Principal: api.PrincipalUser,
		SecretKey: env.UserJWTSecret,
		Store:     store,
	},
		adminapi.AuthSessionModule(env.UserJWTSecret, store),
		adminapi.SiteModule(store),
		adminapi.PlayerModule(store, hooks, notifier, env.DeviceJWTSecret),
		adminapi.LayoutModule(store),
		adminapi.PlaylistModule(store),
		adminapi.ContentModule(store, storageSystem, hooks),
		adminapi.ScheduleModule(store, hooks, notifier),
		adminapi.WebhookModule(store),
		adminapi.AnalyticsModule(store),
	)

	// device API: pairing is public, the rest requires the device JWT
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/v1/player-devices",
	},
		deviceapi.PairingModule(),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/v1/player-devices",
		Principal: api.PrincipalPlayer,
		SecretKey: env.DeviceJWTSecret,
		Store:     store,
	},
		deviceapi.ScheduleModule(store),
		deviceapi.TelemetryModule(store),
	)

	// static uploads when serving files from local disk
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
