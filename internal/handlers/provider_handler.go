package handlers

import (
	"net/http"
	"strconv"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"github.com/inkmatch/inkmatch/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ProviderHandler handles provider profile HTTP requests
type ProviderHandler struct {
	providerRepository repositories.ProviderRepository
	styleRepository    repositories.StyleRepository
	photoRepository    repositories.PhotoRepository
	statsRepository    repositories.StatsRepository
}

// NewProviderHandler creates a new ProviderHandler
func NewProviderHandler(
	providerRepo repositories.ProviderRepository,
	styleRepo repositories.StyleRepository,
	photoRepo repositories.PhotoRepository,
	statsRepo repositories.StatsRepository,
) *ProviderHandler {
	return &ProviderHandler{
		providerRepository: providerRepo,
		styleRepository:    styleRepo,
		photoRepository:    photoRepo,
		statsRepository:    statsRepo,
	}
}

// RegisterProviderRoutes registers provider-related routes
func (h *ProviderHandler) RegisterProviderRoutes(g *echo.Group) {
	g.POST("/providers", h.CreateProvider)
	g.GET("/providers/:id", h.GetProvider)
	g.GET("/providers/:id/stats", h.GetProviderStats)
	g.PATCH("/providers/:id", h.UpdateProviderField)
	g.PUT("/providers/:id/styles", h.ReplaceStyles)
	g.PUT("/providers/:id/photos", h.ReplacePhotos)
	g.DELETE("/providers/:id", h.DeleteProvider)
}

// CreateProvider registers a provider profile with styles and photos
func (h *ProviderHandler) CreateProvider(c echo.Context) error {
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

	styleIDs, err := h.normalizedStyleIDs(c, req.StyleIDs)
	if err != nil {
		return err
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

// GetProvider retrieves a provider profile with styles and photos
func (h *ProviderHandler) GetProvider(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid provider id")
	}
	ctx := c.Request().Context()

	provider, err := h.providerRepository.GetProviderByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if provider == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Provider not found")
	}
	styleNames, err := h.styleRepository.GetStyleNamesByProviderIDs(ctx, []int64{id})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	photoPaths, err := h.photoRepository.GetPhotoPathsByProviderID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"provider": provider,
		"styles":   styleNames[id],
		"photos":   photoPaths,
	})
}

// GetProviderStats retrieves a provider's like, complaint and contact request counters
func (h *ProviderHandler) GetProviderStats(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid provider id")
	}
	ctx := c.Request().Context()

	exists, err := h.providerRepository.ProviderExists(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "Provider not found")
	}
	stats, err := h.statsRepository.GetProviderStats(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

// UpdateProviderField applies a single typed field-update command
func (h *ProviderHandler) UpdateProviderField(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid provider id")
	}
	req := new(models.UpdateProviderFieldRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	switch req.Field {
	case "username":
		err = h.providerRepository.UpdateUsername(ctx, id, req.Value)
	case "url":
		err = h.providerRepository.UpdateURL(ctx, id, req.Value)
	case "name":
		err = h.providerRepository.UpdateName(ctx, id, req.Value)
	case "city":
		err = h.providerRepository.UpdateCity(ctx, id, req.Value)
	case "about":
		err = h.providerRepository.UpdateAbout(ctx, id, req.Value)
	case "tattoo_type":
		tattooType := models.TattooType(req.Value)
		if tattooType != models.TattooTypeColor && tattooType != models.TattooTypeMonochrome && tattooType != models.TattooTypeBoth {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid tattoo type")
		}
		err = h.providerRepository.UpdateTattooType(ctx, id, tattooType)
	case "phone_number":
		err = h.providerRepository.UpdatePhoneNumber(ctx, id, req.Value)
	case "is_notifications_allowed":
		allowed, parseErr := strconv.ParseBool(req.Value)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid boolean value")
		}
		err = h.providerRepository.SetNotificationsAllowed(ctx, id, allowed)
	}
	if err != nil {
		return updateError(err, "Provider not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// ReplaceStyles replaces a provider's style selection
func (h *ProviderHandler) ReplaceStyles(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid provider id")
	}
	req := new(models.ReplaceStylesRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	exists, err := h.providerRepository.ProviderExists(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "Provider not found")
	}
	styleIDs, err := h.normalizedStyleIDs(c, req.StyleIDs)
	if err != nil {
		return err
	}
	if err := h.styleRepository.ReplaceProviderStyles(ctx, id, styleIDs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"style_ids": styleIDs})
}

// ReplacePhotos replaces a provider's photo set
func (h *ProviderHandler) ReplacePhotos(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid provider id")
	}
	req := new(models.ReplacePhotosRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	exists, err := h.providerRepository.ProviderExists(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "Provider not found")
	}
	if err := h.photoRepository.ReplaceProviderPhotos(ctx, id, req.PhotoPaths); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteProvider deletes a provider profile and all dependent rows
func (h *ProviderHandler) DeleteProvider(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid provider id")
	}
	ctx := c.Request().Context()

	exists, err := h.providerRepository.ProviderExists(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "Provider not found")
	}
	if err := h.providerRepository.DeleteProvider(ctx, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// normalizedStyleIDs validates a style selection against the catalog range
func (h *ProviderHandler) normalizedStyleIDs(c echo.Context, styleIDs []int) ([]int, error) {
	maxID, err := h.styleRepository.MaxStyleID(c.Request().Context())
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	normalized := models.NormalizeStyleIDs(styleIDs, maxID)
	if len(normalized) == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "No valid style ids in selection")
	}
	return normalized, nil
}
