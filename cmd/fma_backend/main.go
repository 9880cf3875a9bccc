package main

import (
	"log/slog"
	"os"

	"github.com/fleetserve/fleet_management_app/internal/core/services"
	"github.com/fleetserve/fleet_management_app/internal/handlers"
	"github.com/fleetserve/fleet_management_app/internal/middleware"
	"github.com/fleetserve/fleet_management_app/internal/platform/config"
	"github.com/fleetserve/fleet_management_app/internal/repositories/database/sqlite"
	"github.com/fleetserve/fleet_management_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title FMA Backend API
// @version 1.0
// @description Fleet management backend: vehicles, transactions and financial dashboards.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the database and apply embedded migrations
	db, err := database.NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("Error closing database", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Database ready", slog.String("path", cfg.SQLitePath))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterCustomValidations()

	// Wire repositories and services
	repos := sqlite.NewRepositoryProvider(db)
	serviceContainer := services.NewServiceContainer(repos)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
