package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	fiberRecover "github.com/gofiber/fiber/v3/middleware/recover"

	"movie-explorer-service/internal/behavior"
	"movie-explorer-service/internal/catalog"
	"movie-explorer-service/internal/config"
	"movie-explorer-service/internal/database"
	"movie-explorer-service/internal/favorites"
	"movie-explorer-service/internal/handler"
	"movie-explorer-service/internal/service"
	"movie-explorer-service/internal/store"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Open the local store (degrades to in-memory if unavailable)
	var kv store.KV
	kv, err = store.OpenBitcask(cfg.DataDir)
	if err != nil {
		slog.Warn("local store unavailable, favorites and behavior will not survive restarts", "error", err)
		kv = store.NewMemory()
	}

	// Connect to Redis (non-fatal if unavailable)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	}

	// Select the catalog source once at startup
	var source catalog.Source
	if cfg.TMDB.Configured() {
		slog.Info("using live catalog provider", "base_url", cfg.TMDB.BaseURL)
		source = catalog.NewLive(cfg.TMDB.APIKey, cfg.TMDB.BaseURL)
	} else {
		slog.Info("no catalog credential configured, serving fallback dataset")
		source = catalog.NewFallback()
	}

	// Initialize layers
	favs := favorites.NewStore(kv)
	tracker := behavior.NewTracker(kv)
	movieSvc := service.NewMovieService(source, rdb, cfg.TMDB.Configured())
	recSvc := service.NewRecommendService(source, favs)

	movieH := handler.NewMovieHandler(movieSvc)
	recH := handler.NewRecommendHandler(recSvc)
	favH := handler.NewFavoritesHandler(favs)
	behH := handler.NewBehaviorHandler(tracker)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Movie Explorer",
		ServerHeader: "Movie-Explorer",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(fiberRecover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger docs
	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger.yaml not found, swagger UI will be unavailable", "error", err)
	} else {
		handler.RegisterSwagger(app, swaggerYAML)
	}

	// API routes
	api := app.Group("/api/v1")
	api.Get("/health", movieH.Health)

	api.Get("/movies/search", movieH.Search)
	api.Get("/movies/demo-details", movieH.DemoDetails)
	api.Get("/movies/:id", movieH.Detail)
	api.Get("/movies/:id/similar", movieH.Similar)

	api.Post("/recommendations/collaborative", recH.Collaborative)
	api.Get("/recommendations/genre", recH.Genre)
	api.Get("/recommendations/sections", recH.Sections)

	api.Get("/favorites", favH.List)
	api.Post("/favorites", favH.Add)
	api.Get("/favorites/:id", favH.Get)
	api.Put("/favorites/:id", favH.Update)
	api.Delete("/favorites/:id", favH.Remove)

	api.Post("/actions", behH.Record)
	api.Get("/actions", behH.Actions)
	api.Delete("/actions", behH.Clear)
	api.Get("/behavior", behH.Summary)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.Port
		slog.Info("starting movie explorer service", "addr", addr)
		if err := app.Listen(addr); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down movie explorer service...")

	// Shutdown HTTP server first (stop accepting new requests)
	if err := app.Shutdown(); err != nil {
		slog.Error("error shutting down HTTP server", "error", err)
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			slog.Error("error closing Redis connection", "error", err)
		}
	}
	if err := kv.Close(); err != nil {
		slog.Error("error closing local store", "error", err)
	}

	slog.Info("shutdown complete")
}
