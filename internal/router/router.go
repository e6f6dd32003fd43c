package router

import (
	"fmt"

	"github.com/inkmatch/inkmatch/backend/internal/handlers"
	"github.com/inkmatch/inkmatch/backend/internal/matching"
	"github.com/inkmatch/inkmatch/backend/internal/middleware"
	"github.com/inkmatch/inkmatch/backend/internal/models"
	"github.com/inkmatch/inkmatch/backend/internal/repositories"
	"github.com/inkmatch/inkmatch/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
}

// SetupRoutes migrates the schema, wires repositories into the matching
// engine and handlers, and registers all application routes.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, cfg *config.Config, logger *zap.Logger) error {
	err := pgdb.AutoMigrate(
		&models.Provider{},
		&models.Requester{},
		&models.Style{},
		&models.ProviderStyle{},
		&models.RequesterStyle{},
		&models.ProviderPhoto{},
		&models.Like{},
		&models.Complaint{},
		&models.ContactRequest{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto migrate models: %w", err)
	}
	logger.Info("auto-migrations completed for all models")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	providerRepo := repositories.NewPostgresProviderRepository(pgdb)
	requesterRepo := repositories.NewPostgresRequesterRepository(pgdb)
	styleRepo := repositories.NewPostgresStyleRepository(pgdb)
	photoRepo := repositories.NewPostgresPhotoRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	complaintRepo := repositories.NewPostgresComplaintRepository(pgdb)
	contactRepo := repositories.NewPostgresContactRequestRepository(pgdb)
	statsRepo := repositories.NewPostgresStatsRepository(pgdb)

	engine := matching.NewEngine(requesterRepo, providerRepo, styleRepo, photoRepo, likeRepo, logger)

	api := e.Group("/api/v1")

	matchHandler := handlers.NewMatchHandler(engine, likeRepo)
	matchHandler.RegisterMatchRoutes(api)
	logger.Info("match routes configured")

	providerHandler := handlers.NewProviderHandler(providerRepo, styleRepo, photoRepo, statsRepo)
	providerHandler.RegisterProviderRoutes(api)
	logger.Info("provider routes configured")

	requesterHandler := handlers.NewRequesterHandler(requesterRepo, styleRepo)
	requesterHandler.RegisterRequesterRoutes(api)
	logger.Info("requester routes configured")

	styleHandler := handlers.NewStyleHandler(styleRepo)
	styleHandler.RegisterStyleRoutes(api)
	logger.Info("style routes configured")

	interactionHandler := handlers.NewInteractionHandler(complaintRepo, contactRepo, providerRepo, requesterRepo)
	interactionHandler.RegisterInteractionRoutes(api)
	logger.Info("interaction routes configured")

	// --- Protected admin routes (require admin JWT) ---
	admin := e.Group("/api/v1/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg.JWTSecret))

	adminHandler := handlers.NewAdminHandler(providerRepo, requesterRepo, styleRepo, photoRepo, statsRepo)
	adminHandler.RegisterAdminRoutes(admin)
	styleHandler.RegisterAdminStyleRoutes(admin)
	logger.Info("admin routes configured")

	return nil
}
