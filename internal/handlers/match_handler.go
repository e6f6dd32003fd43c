package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/inkmatch/inkmatch/backend/internal/matching"
	"github.com/inkmatch/inkmatch/backend/internal/models"
	"github.com/inkmatch/inkmatch/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// Matcher is the ranking engine surface the match handler depends on
type Matcher interface {
	RankCandidates(ctx context.Context, requesterID int64, tier string, offset, pageSize int) ([]matching.ProviderCard, error)
	RankLiked(ctx context.Context, requesterID int64, offset, pageSize int) ([]matching.ProviderCard, error)
	RankNew(ctx context.Context, requesterID int64, offset, pageSize int) ([]matching.ProviderCard, error)
	LikeProvider(ctx context.Context, requesterID, providerID int64) (bool, error)
}

// MatchHandler handles candidate ranking and like HTTP requests
type MatchHandler struct {
	matcher        Matcher
	likeRepository repositories.LikeRepository
}

// NewMatchHandler creates a new MatchHandler
func NewMatchHandler(matcher Matcher, likeRepo repositories.LikeRepository) *MatchHandler {
	return &MatchHandler{
		matcher:        matcher,
		likeRepository: likeRepo,
	}
}

// RegisterMatchRoutes registers matching-related routes
func (h *MatchHandler) RegisterMatchRoutes(g *echo.Group) {
	g.GET("/requesters/:requester_id/matches", h.GetMatches)
	g.GET("/requesters/:requester_id/matches/liked", h.GetLikedMatches)
	g.GET("/requesters/:requester_id/matches/new", h.GetNewMatches)
	g.POST("/requesters/:requester_id/likes", h.LikeProvider)
	g.DELETE("/requesters/:requester_id/likes/:provider_id", h.UnlikeProvider)
}

// GetMatches returns one ranked page of candidate providers for a tier
func (h *MatchHandler) GetMatches(c echo.Context) error {
	requesterID, err := parseID(c.Param("requester_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid requester id")
	}
	tier := c.QueryParam("tier")
	if tier == "" {
		tier = string(matching.TierAll)
	}
	offset, limit := parseWindow(c)

	cards, err := h.matcher.RankCandidates(c.Request().Context(), requesterID, tier, offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"matches": cards,
		"tier":    tier,
		"offset":  offset,
		"limit":   limit,
	})
}

// GetLikedMatches returns one ranked page of the providers the requester liked
func (h *MatchHandler) GetLikedMatches(c echo.Context) error {
	requesterID, err := parseID(c.Param("requester_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid requester id")
	}
	offset, limit := parseWindow(c)

	cards, err := h.matcher.RankLiked(c.Request().Context(), requesterID, offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"matches": cards,
		"offset":  offset,
		"limit":   limit,
	})
}

// GetNewMatches returns one ranked page of recently registered providers
// in the requester's city
func (h *MatchHandler) GetNewMatches(c echo.Context) error {
	requesterID, err := parseID(c.Param("requester_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid requester id")
	}
	offset, limit := parseWindow(c)

	cards, err := h.matcher.RankNew(c.Request().Context(), requesterID, offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"matches": cards,
		"offset":  offset,
		"limit":   limit,
	})
}

// LikeProvider handles liking a provider
func (h *MatchHandler) LikeProvider(c echo.Context) error {
	requesterID, err := parseID(c.Param("requester_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid requester id")
	}
	req := new(models.CreateLikeRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	created, err := h.matcher.LikeProvider(c.Request().Context(), requesterID, req.ProviderID)
	if err != nil {
		if errors.Is(err, matching.ErrProviderNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Provider not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	return c.JSON(status, echo.Map{"created": created})
}

// UnlikeProvider handles removing a like
func (h *MatchHandler) UnlikeProvider(c echo.Context) error {
	requesterID, err := parseID(c.Param("requester_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid requester id")
	}
	providerID, err := parseID(c.Param("provider_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid provider id")
	}

	deleted, err := h.likeRepository.DeleteLike(c.Request().Context(), requesterID, providerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "Like not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// parseWindow reads the offset/limit query params with the same clamping
// the rest of the API uses: limit defaults to 10 and is capped at 50.
func parseWindow(c echo.Context) (int, int) {
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return offset, limit
}
