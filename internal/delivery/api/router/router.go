// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lastseen/config"
	"lastseen/internal/delivery/api/middleware"
	"lastseen/internal/delivery/api/router/handler"
	"lastseen/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CircleHandler      *handler.CircleHandler
	ConnectionsHandler *handler.ConnectionsHandler
	ShareHandler       *handler.ShareHandler
	DeviceHandler      *handler.DeviceHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Recorder           metrics.Recorder
	Registry           *prometheus.Registry
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	circleHandler      *handler.CircleHandler
	connectionsHandler *handler.ConnectionsHandler
	shareHandler       *handler.ShareHandler
	deviceHandler      *handler.DeviceHandler
	authMiddleware     *middleware.AuthMiddleware
	recorder           metrics.Recorder
	registry           *prometheus.Registry
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		circleHandler:      params.CircleHandler,
		connectionsHandler: params.ConnectionsHandler,
		shareHandler:       params.ShareHandler,
		deviceHandler:      params.DeviceHandler,
		authMiddleware:     params.AuthMiddleware,
		recorder:           params.Recorder,
		registry:           params.Registry,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))
	}

	// Anonymous share links
	perMinute := 0
	if r.config.Share != nil {
		perMinute = r.config.Share.RateLimitPerMinute
	}
	e.GET("/s/:token", r.shareHandler.Resolve, middleware.NewShareRateLimiter(perMinute, r.recorder))

	circleGroup := e.Group("/circle")
	circleGroup.Use(r.authMiddleware.Authenticate)
	{
		circleGroup.GET("/view", r.circleHandler.View)
		circleGroup.POST("/refresh", r.circleHandler.Refresh)
		circleGroup.POST("/location", r.circleHandler.LogLocation)
		circleGroup.DELETE("/location", r.circleHandler.StopSharing)
		circleGroup.GET("/map", r.circleHandler.MapScene)
		circleGroup.POST("/map/focus/:key", r.circleHandler.FocusOwner)

		circleGroup.GET("/connections", r.connectionsHandler.List)
		circleGroup.POST("/connections", r.connectionsHandler.Add)
		circleGroup.DELETE("/connections/:id", r.connectionsHandler.Remove)

		circleGroup.POST("/share", r.shareHandler.Enable)
		circleGroup.POST("/share/rotate", r.shareHandler.Rotate)
		circleGroup.DELETE("/share", r.shareHandler.Disable)
		circleGroup.GET("/share/qr", r.shareHandler.QRCode)
	}

	devicesGroup := e.Group("/devices")
	devicesGroup.Use(r.authMiddleware.Authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
	}
}
