package handlers

import (
	"net/http"
	"strconv"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"github.com/inkmatch/inkmatch/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// InteractionHandler handles complaints and contact requests
type InteractionHandler struct {
	complaintRepository      repositories.ComplaintRepository
	contactRequestRepository repositories.ContactRequestRepository
	providerRepository       repositories.ProviderRepository
	requesterRepository      repositories.RequesterRepository
}

// NewInteractionHandler creates a new InteractionHandler
func NewInteractionHandler(
	complaintRepo repositories.ComplaintRepository,
	contactRepo repositories.ContactRequestRepository,
	providerRepo repositories.ProviderRepository,
	requesterRepo repositories.RequesterRepository,
) *InteractionHandler {
	return &InteractionHandler{
		complaintRepository:      complaintRepo,
		contactRequestRepository: contactRepo,
		providerRepository:       providerRepo,
		requesterRepository:      requesterRepo,
	}
}

// RegisterInteractionRoutes registers complaint and contact request routes
func (h *InteractionHandler) RegisterInteractionRoutes(g *echo.Group) {
	g.POST("/requesters/:requester_id/complaints", h.CreateComplaint)
	g.POST("/requesters/:requester_id/contact-requests", h.CreateContactRequest)
}

// CreateComplaint files a complaint against a provider. A repeat complaint
// for the same pair is accepted and ignored.
func (h *InteractionHandler) CreateComplaint(c echo.Context) error {
	requesterID, err := strconv.ParseInt(c.Param("requester_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid requester id")
	}
	req := new(models.CreateComplaintRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	if err := h.checkPair(c, requesterID, req.ProviderID); err != nil {
		return err
	}
	if err := h.complaintRepository.CreateComplaint(ctx, requesterID, req.ProviderID, req.Text); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusCreated)
}

// CreateContactRequest records a contact request and returns the provider's
// contact card.
func (h *InteractionHandler) CreateContactRequest(c echo.Context) error {
	requesterID, err := strconv.ParseInt(c.Param("requester_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid requester id")
	}
	req := new(models.CreateContactRequestRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	if err := h.checkPair(c, requesterID, req.ProviderID); err != nil {
		return err
	}
	if err := h.contactRequestRepository.CreateContactRequest(ctx, requesterID, req.ProviderID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	provider, err := h.providerRepository.GetProviderByID(ctx, req.ProviderID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if provider == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Provider not found")
	}
	contact := models.ProviderContact{
		ID:          provider.ID,
		Name:        provider.Name,
		URL:         provider.URL,
		Username:    provider.Username,
		PhoneNumber: provider.PhoneNumber,
	}
	return c.JSON(http.StatusCreated, contact)
}

// checkPair verifies both sides of an interaction exist
func (h *InteractionHandler) checkPair(c echo.Context, requesterID, providerID int64) error {
	ctx := c.Request().Context()
	exists, err := h.requesterRepository.RequesterExists(ctx, requesterID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "Requester not found")
	}
	exists, err = h.providerRepository.ProviderExists(ctx, providerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "Provider not found")
	}
	return nil
}
