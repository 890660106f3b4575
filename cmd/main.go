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

	"github.com/iamahmadmhd/cinemora/internal/config"
	"github.com/iamahmadmhd/cinemora/internal/database"
	"github.com/iamahmadmhd/cinemora/internal/handler"
	"github.com/iamahmadmhd/cinemora/internal/middleware"
	"github.com/iamahmadmhd/cinemora/internal/repository"
	"github.com/iamahmadmhd/cinemora/internal/service"
	"github.com/iamahmadmhd/cinemora/internal/tmdb"
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

	// Connect to PostgreSQL
	db, err := database.NewPostgres(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Connect to Redis (non-fatal if unavailable)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	}

	// Initialize catalog API client
	catalogClient := tmdb.NewClient(cfg.TMDB.Token, cfg.TMDB.BaseURL)

	// Initialize layers
	watchlistRepo := repository.NewWatchlistRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	catalogSvc := service.NewCatalogService(catalogClient, rdb, cfg.TMDB.ImagesURL)
	watchlistSvc := service.NewWatchlistService(watchlistRepo, rdb)
	profileSvc := service.NewProfileService(profileRepo)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	watchlistH := handler.NewWatchlistHandler(watchlistSvc)
	profileH := handler.NewProfileHandler(profileSvc)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Cinemora",
		ServerHeader: "Cinemora",
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
	if rdb != nil {
		rateLimiter := middleware.NewRateLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.WindowSeconds)
		app.Use(rateLimiter.Handler())
	}
	app.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// API routes
	api := app.Group("/api")
	api.Get("/health", catalogH.Health)
	api.Get("/movie", catalogH.ListMovies)
	api.Get("/movie/:id", catalogH.MovieDetail)
	api.Get("/tv", catalogH.ListTVShows)
	api.Get("/tv/:id", catalogH.TVDetail)
	api.Get("/trending/:mediaType", catalogH.Trending)
	api.Get("/genres/:mediaType", catalogH.Genres)
	api.Get("/watchlist", watchlistH.List)
	api.Get("/watchlist/check", watchlistH.Check)
	api.Post("/watchlist/add", watchlistH.Add)
	api.Post("/watchlist/remove", watchlistH.Remove)
	api.Post("/profile", profileH.Create)
	api.Get("/profile", profileH.Get)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.Port
		slog.Info("starting cinemora", "addr", addr)
		if err := app.Listen(addr); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down cinemora...")

	if err := app.Shutdown(); err != nil {
		slog.Error("error shutting down HTTP server", "error", err)
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			slog.Error("error closing Redis connection", "error", err)
		}
	}

	slog.Info("shutdown complete")
}
