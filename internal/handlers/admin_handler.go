package handlers

import (
	"net/http"
	"strconv"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"github.com/inkmatch/inkmatch/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles the moderation surface: block flags, fake profiles
// and global counters. All routes are JWT-guarded.
type AdminHandler struct {
	providerRepository  repositories.ProviderRepository
	requesterRepository repositories.RequesterRepository
	styleRepository     repositories.StyleRepository
	photoRepository     repositories.PhotoRepository
	statsRepository     repositories.StatsRepository
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	providerRepo repositories.ProviderRepository,
	requesterRepo repositories.RequesterRepository,
	styleRepo repositories.StyleRepository,
	photoRepo repositories.PhotoRepository,
	statsRepo repositories.StatsRepository,
) *AdminHandler {
	return &AdminHandler{
		providerRepository:  providerRepo,
		requesterRepository: requesterRepo,
		styleRepository:     styleRepo,
		photoRepository:     photoRepo,
		statsRepository:     statsRepo,
	}
}

// RegisterAdminRoutes registers moderation routes
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/stats", h.GetStats)
	g.POST("/providers/:id/block", h.SetProviderBlocked)
	g.POST("/requesters/:id/block", h.SetRequesterBlocked)
	g.POST("/providers/fake", h.CreateFakeProvider)
	g.GET("/providers/fakes", h.GetFakeProviders)
}

// GetStats returns the global entity counters
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.statsRepository.GetAdminStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

// SetProviderBlocked blocks or unblocks a provider. A blocked provider
// disappears from every ranked view on the next call.
func (h *AdminHandler) SetProviderBlocked(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid provider id")
	}
	req := new(models.SetBlockedRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.providerRepository.SetBlocked(c.Request().Context(), id, *req.Blocked); err != nil {
		return updateError(err, "Provider not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// SetRequesterBlocked blocks or unblocks a requester
func (h *AdminHandler) SetRequesterBlocked(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid requester id")
	}
	req := new(models.SetBlockedRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.requesterRepository.SetBlocked(c.Request().Context(), id, *req.Blocked); err != nil {
		return updateError(err, "Requester not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateFakeProvider registers an admin-created provider profile. Fakes
// rank like any other provider; only the flag tells them apart.
func (h *AdminHandler) CreateFakeProvider(c echo.Context) error {
	req := new(models.CreateProviderRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	exists, err := h.providerRepository.ProviderExists(ctx, req.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if exists {
		return echo.NewHTTPError(http.StatusConflict, "Provider already registered")
	}
	maxID, err := h.styleRepository.MaxStyleID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	styleIDs := models.NormalizeStyleIDs(req.StyleIDs, maxID)
	if len(styleIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No valid style ids in selection")
	}

	provider := &models.Provider{
		ID:          req.ID,
		Username:    req.Username,
		URL:         req.URL,
		Name:        req.Name,
		City:        req.City,
		About:       req.About,
		TattooType:  models.TattooType(req.TattooType),
		PhoneNumber: req.PhoneNumber,
		IsFake:      true,
	}
	if err := h.providerRepository.CreateProvider(ctx, provider); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.styleRepository.ReplaceProviderStyles(ctx, provider.ID, styleIDs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(req.PhotoPaths) > 0 {
		if err := h.photoRepository.ReplaceProviderPhotos(ctx, provider.ID, req.PhotoPaths); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, provider)
}

// GetFakeProviders lists all admin-created provider profiles
func (h *AdminHandler) GetFakeProviders(c echo.Context) error {
	providers, err := h.providerRepository.GetFakeProviders(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"providers": providers})
}
