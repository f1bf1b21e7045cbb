package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "shuttletrack/internal/errors"
	"shuttletrack/internal/model"
	"shuttletrack/internal/service"
)

// InvitationHandler handles invitation endpoints.
type InvitationHandler struct {
	invitations service.InvitationService
}

// NewInvitationHandler creates a new invitation handler.
func NewInvitationHandler(invitations service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitations: invitations}
}

// CreateInvitationRequest represents a coach inviting a player.
type CreateInvitationRequest struct {
	Email   string `json:"email" validate:"required,email"`
	CoachID uint   `json:"coachId" validate:"required"`
}

// CreateInvitationResponse carries the issued token.
type CreateInvitationResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// InvitationResponse is a pending invitation with the inviting coach's name.
type InvitationResponse struct {
	model.Invitation
	CoachName string `json:"coach_name,omitempty"`
}

// Create godoc
// @Summary Issue a single-use player invitation
// @Tags invitations
// @Accept json
// @Produce json
// @Param request body CreateInvitationRequest true "Invitation data"
// @Success 200 {object} CreateInvitationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /invitations [post]
func (h *InvitationHandler) Create(c echo.Context) error {
	var req CreateInvitationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inv, err := h.invitations.Create(c.Request().Context(), req.Email, req.CoachID)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, CreateInvitationResponse{Success: true, Token: inv.Token})
}

// Get godoc
// @Summary Look up a pending invitation by token
// @Tags invitations
// @Produce json
// @Param token path string true "Invitation token"
// @Success 200 {object} InvitationResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /invitations/{token} [get]
func (h *InvitationHandler) Get(c echo.Context) error {
	inv, err := h.invitations.FindPending(c.Request().Context(), c.Param("token"))
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	resp := InvitationResponse{Invitation: *inv}
	if inv.Coach != nil {
		resp.CoachName = inv.Coach.Name
	}
	resp.Coach = nil
	return c.JSON(http.StatusOK, resp)
}
