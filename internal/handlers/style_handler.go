package handlers

import (
	"net/http"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"github.com/inkmatch/inkmatch/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// StyleHandler handles style catalog HTTP requests
type StyleHandler struct {
	styleRepository repositories.StyleRepository
}

// NewStyleHandler creates a new StyleHandler
func NewStyleHandler(styleRepo repositories.StyleRepository) *StyleHandler {
	return &StyleHandler{styleRepository: styleRepo}
}

// RegisterStyleRoutes registers the public catalog route
func (h *StyleHandler) RegisterStyleRoutes(g *echo.Group) {
	g.GET("/styles", h.GetStyles)
}

// RegisterAdminStyleRoutes registers the catalog seeding route
func (h *StyleHandler) RegisterAdminStyleRoutes(g *echo.Group) {
	g.POST("/styles/seed", h.SeedStyles)
}

// GetStyles returns the style catalog, without the reserved wildcard entry
func (h *StyleHandler) GetStyles(c echo.Context) error {
	styles, err := h.styleRepository.GetStyles(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"styles": styles})
}

// SeedStylesRequest defines the request body for seeding the catalog
type SeedStylesRequest struct {
	Styles []models.Style `json:"styles" validate:"required,min=1,dive"`
}

// SeedStyles inserts catalog entries, skipping ids that already exist
func (h *StyleHandler) SeedStyles(c echo.Context) error {
	req := new(SeedStylesRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.styleRepository.SeedStyles(c.Request().Context(), req.Styles); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{"seeded": len(req.Styles)})
}
