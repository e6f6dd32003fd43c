package handlers

import (
	"net/http"
	"strconv"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"github.com/inkmatch/inkmatch/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// RequesterHandler handles requester profile HTTP requests
type RequesterHandler struct {
	requesterRepository repositories.RequesterRepository
	styleRepository     repositories.StyleRepository
}

// NewRequesterHandler creates a new RequesterHandler
func NewRequesterHandler(requesterRepo repositories.RequesterRepository, styleRepo repositories.StyleRepository) *RequesterHandler {
	return &RequesterHandler{
		requesterRepository: requesterRepo,
		styleRepository:     styleRepo,
	}
}

// RegisterRequesterRoutes registers requester-related routes
func (h *RequesterHandler) RegisterRequesterRoutes(g *echo.Group) {
	g.POST("/requesters", h.CreateRequester)
	g.GET("/requesters/:id", h.GetRequester)
	g.PATCH("/requesters/:id", h.UpdateRequesterField)
	g.PUT("/requesters/:id/styles", h.ReplaceStyles)
	g.DELETE("/requesters/:id", h.DeleteRequester)
}

// CreateRequester registers a requester profile with their style selection
func (h *RequesterHandler) CreateRequester(c echo.Context) error {
	req := new(models.CreateRequesterRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	exists, err := h.requesterRepository.RequesterExists(ctx, req.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if exists {
		return echo.NewHTTPError(http.StatusConflict, "Requester already registered")
	}

	maxID, err := h.styleRepository.MaxStyleID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	styleIDs := models.NormalizeStyleIDs(req.StyleIDs, maxID)
	if len(styleIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No valid style ids in selection")
	}

	requester := &models.Requester{
		ID:         req.ID,
		Username:   req.Username,
		URL:        req.URL,
		Name:       req.Name,
		City:       req.City,
		TattooType: models.TattooType(req.TattooType),
	}
	if err := h.requesterRepository.CreateRequester(ctx, requester); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.styleRepository.ReplaceRequesterStyles(ctx, requester.ID, styleIDs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, requester)
}

// GetRequester retrieves a requester profile with their style selection
func (h *RequesterHandler) GetRequester(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid requester id")
	}
	ctx := c.Request().Context()

	requester, err := h.requesterRepository.GetRequesterByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if requester == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Requester not found")
	}
	styleIDs, err := h.styleRepository.GetRequesterStyleIDs(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"requester": requester,
		"style_ids": styleIDs,
	})
}

// UpdateRequesterField applies a single typed field-update command
func (h *RequesterHandler) UpdateRequesterField(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid requester id")
	}
	req := new(models.UpdateRequesterFieldRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	switch req.Field {
	case "username":
		err = h.requesterRepository.UpdateUsername(ctx, id, req.Value)
	case "name":
		err = h.requesterRepository.UpdateName(ctx, id, req.Value)
	case "city":
		err = h.requesterRepository.UpdateCity(ctx, id, req.Value)
	case "tattoo_type":
		tattooType := models.TattooType(req.Value)
		if tattooType != models.TattooTypeColor && tattooType != models.TattooTypeMonochrome && tattooType != models.TattooTypeBoth {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid tattoo type")
		}
		err = h.requesterRepository.UpdateTattooType(ctx, id, tattooType)
	case "is_advertising_allowed", "is_model", "is_consent_given":
		value, parseErr := strconv.ParseBool(req.Value)
		if parseErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid boolean value")
		}
		switch req.Field {
		case "is_advertising_allowed":
			err = h.requesterRepository.SetAdvertisingAllowed(ctx, id, value)
		case "is_model":
			err = h.requesterRepository.SetModel(ctx, id, value)
		case "is_consent_given":
			err = h.requesterRepository.SetConsentGiven(ctx, id, value)
		}
	}
	if err != nil {
		return updateError(err, "Requester not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// ReplaceStyles replaces a requester's style selection
func (h *RequesterHandler) ReplaceStyles(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid requester id")
	}
	req := new(models.ReplaceStylesRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	exists, err := h.requesterRepository.RequesterExists(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "Requester not found")
	}
	maxID, err := h.styleRepository.MaxStyleID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	styleIDs := models.NormalizeStyleIDs(req.StyleIDs, maxID)
	if len(styleIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No valid style ids in selection")
	}
	if err := h.styleRepository.ReplaceRequesterStyles(ctx, id, styleIDs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"style_ids": styleIDs})
}

// DeleteRequester deletes a requester profile and all dependent rows
func (h *RequesterHandler) DeleteRequester(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid requester id")
	}
	ctx := c.Request().Context()

	exists, err := h.requesterRepository.RequesterExists(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "Requester not found")
	}
	if err := h.requesterRepository.DeleteRequester(ctx, id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
