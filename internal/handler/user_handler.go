package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "shuttletrack/internal/errors"
	"shuttletrack/internal/service"
)

// UserHandler handles roster endpoints.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// SetStageRequest moves a user to another curriculum stage.
type SetStageRequest struct {
	StageID uint `json:"stageId" validate:"required"`
}

// AdminUpdateUserRequest patches user fields. Zero-value fields are ignored.
type AdminUpdateUserRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email" validate:"omitempty,email"`
	Role           string `json:"role" validate:"omitempty,oneof=admin coach player"`
	CurrentStageID uint   `json:"current_stage_id"`
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// SetStage godoc
// @Summary Move a user to another curriculum stage
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body SetStageRequest true "Stage"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/stage [patch]
func (h *UserHandler) SetStage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req SetStageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.SetCurrentStage(c.Request().Context(), uint(id), req.StageID); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// AdminUpdate godoc
// @Summary Patch a user's fields
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body AdminUpdateUserRequest true "Updates"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/users/{id} [patch]
func (h *UserHandler) AdminUpdate(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req AdminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.CurrentStageID != 0 {
		updates["current_stage_id"] = req.CurrentStageID
	}
	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no updates supplied")
	}

	user, err := h.users.AdminUpdate(c.Request().Context(), uint(id), updates)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// AdminDelete godoc
// @Summary Delete a user
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *UserHandler) AdminDelete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.users.AdminDelete(c.Request().Context(), uint(id)); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
