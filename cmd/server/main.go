package main

import (
	"net/http"

	"github.com/inkmatch/inkmatch/backend/internal/router"
	"github.com/inkmatch/inkmatch/backend/pkg/config"
	"github.com/inkmatch/inkmatch/backend/pkg/logger"
	"github.com/inkmatch/inkmatch/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Postgres, cfg, log); err != nil {
		log.Fatal("failed to set up routes", zap.Error(err))
	}

	// Prometheus metrics on a separate listener
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
			log.Error("metrics server stopped", zap.Error(err))
		}
	}()

	// Start server
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
