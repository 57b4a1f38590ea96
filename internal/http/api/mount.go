package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/helioscast/helios/internal/db"
	"github.com/helioscast/helios/internal/http/middleware"
)

// Module is a pluggable feature that attaches its endpoints to a Controller.
type Module interface {
	Mount(c *Controller)
}

// ModuleFunc lets you define a Module with a simple function.
type ModuleFunc func(c *Controller)

func (f ModuleFunc) Mount(c *Controller) { f(c) }

// Principal kinds a mounted group can require.
const (
	PrincipalNone   = ""
	PrincipalUser   = "user"
	PrincipalPlayer = "player"
)

// GroupConfig tells the api package how to mount a group.
type GroupConfig struct {
	Prefix     string
	Principal  string            // required principal kind, if any
	SecretKey  string            // required when Principal is set
	Store      db.Store          // required when Principal is set
	Middleware []gin.HandlerFunc // optional additional middleware
}

// Controller is the surface modules register their routes against. The
// method used picks the principal the handler runs as.
type Controller struct {
	Group *gin.RouterGroup
}

func (c *Controller) GET(path string, h HandlerFuncWithAuth)    { c.Group.GET(path, ResolveEndpointWithAuth(h)) }
func (c *Controller) POST(path string, h HandlerFuncWithAuth)   { c.Group.POST(path, ResolveEndpointWithAuth(h)) }
func (c *Controller) PUT(path string, h HandlerFuncWithAuth)    { c.Group.PUT(path, ResolveEndpointWithAuth(h)) }
func (c *Controller) PATCH(path string, h HandlerFuncWithAuth)  { c.Group.PATCH(path, ResolveEndpointWithAuth(h)) }
func (c *Controller) DELETE(path string, h HandlerFuncWithAuth) { c.Group.DELETE(path, ResolveEndpointWithAuth(h)) }

func (c *Controller) PLAYER_GET(path string, h HandlerFuncWithPlayer) {
	c.Group.GET(path, ResolveEndpointWithPlayer(h))
}
func (c *Controller) PLAYER_POST(path string, h HandlerFuncWithPlayer) {
	c.Group.POST(path, ResolveEndpointWithPlayer(h))
}

func (c *Controller) PUBLIC_POST(path string, h HandlerFunc) {
	c.Group.POST(path, ResolveEndpoint(h))
}
func (c *Controller) DEVICE_PUBLIC_POST(path string, h HandlerFunc) {
	c.Group.POST(path, ResolvePublicDeviceEndpoint(h))
}

// MountGroup mounts one or more Modules under a prefix with optional auth.
func MountGroup(parent gin.IRoutes, cfg GroupConfig, modules ...Module) {
	var grp *gin.RouterGroup

	switch v := parent.(type) {
	case *gin.Engine:
		grp = v.Group(cfg.Prefix)
	case *gin.RouterGroup:
		if cfg.Prefix != "" {
			grp = v.Group(cfg.Prefix)
		} else {
			grp = v
		}
	default:
		log.Fatal().Str("type", fmt.Sprintf("%T", parent)).Msg("api.MountGroup: unsupported router type")
	}

	// Apply middleware in a deterministic order.
	for _, mw := range cfg.Middleware {
		grp.Use(mw)
	}
	switch cfg.Principal {
	case PrincipalUser:
		if cfg.SecretKey == "" {
			log.Fatal().Msg("api.MountGroup: user principal requires a secret key")
		}
		grp.Use(middleware.UserJWTMiddleware(cfg.SecretKey, cfg.Store))
	case PrincipalPlayer:
		if cfg.SecretKey == "" {
			log.Fatal().Msg("api.MountGroup: player principal requires a secret key")
		}
		grp.Use(middleware.PlayerJWTMiddleware(cfg.SecretKey, cfg.Store))
	}

	controller := &Controller{Group: grp}

	for _, m := range modules {
		m.Mount(controller)
	}
}
