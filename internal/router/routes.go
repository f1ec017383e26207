package router

import (
	"github.com/labstack/echo/v4"

	"github.com/waypointlabs/semantic-maps-api/internal/config"
	"github.com/waypointlabs/semantic-maps-api/internal/handler"
	middlewarepkg "github.com/waypointlabs/semantic-maps-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Root   *handler.RootHandler
	Voice  *handler.VoiceHandler
	Places *handler.PlacesHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/", handlers.Root.Index)
	e.GET("/healthz", handlers.Root.Index)

	api := e.Group("/api")

	limiter := middlewarepkg.SearchRateLimiter(cfg.RateLimitSearch)
	api.POST("/parse-voice-query", handlers.Voice.Parse, limiter)
	api.POST("/find-places-on-route", handlers.Places.Find, limiter)
}
