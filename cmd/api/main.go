package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/waypointlabs/semantic-maps-api/internal/config"
	"github.com/waypointlabs/semantic-maps-api/internal/gemini"
	"github.com/waypointlabs/semantic-maps-api/internal/handler"
	mapsclient "github.com/waypointlabs/semantic-maps-api/internal/maps"
	middlewarepkg "github.com/waypointlabs/semantic-maps-api/internal/middleware"
	"github.com/waypointlabs/semantic-maps-api/internal/router"
	"github.com/waypointlabs/semantic-maps-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var gen gemini.Generator = gemini.Disabled{}
	var geminiErr error
	if cfg.GeminiAPIKey == "" {
		geminiErr = gemini.ErrNotConfigured
		log.Printf("GEMINI_API_KEY missing, model-backed endpoints disabled")
	} else {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("failed to create gemini client: %v", err)
		}
		gen = client
	}

	var mapsAPI mapsclient.API = mapsclient.Disabled{}
	var mapsErr error
	if cfg.GoogleAPIKey == "" {
		mapsErr = mapsclient.ErrNotConfigured
		log.Printf("GOOGLE_API_KEY missing, places endpoints disabled")
	} else {
		mapsAPI = mapsclient.NewClient(cfg.GoogleAPIKey, nil)
	}

	placesService := service.NewPlacesService(gen, mapsAPI, cfg.SearchRadiusM)
	resolverService := service.NewResolverService(gen, mapsAPI, cfg.ContextRadiusM, cfg.SearchRadiusM, cfg.BroadRadiusM)

	// The voice endpoint reports a missing Gemini key first, the places
	// endpoint a missing Maps key first, matching the client's expectations.
	handlers := router.Handlers{
		Root:   handler.NewRootHandler(),
		Voice:  handler.NewVoiceHandler(gen, resolverService, firstErr(geminiErr, mapsErr)),
		Places: handler.NewPlacesHandler(placesService, firstErr(mapsErr, geminiErr)),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	router.Register(e, cfg, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
