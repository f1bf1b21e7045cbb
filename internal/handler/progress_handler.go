package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "shuttletrack/internal/errors"
	"shuttletrack/internal/service"
)

// ProgressHandler handles progress ledger endpoints.
type ProgressHandler struct {
	progress service.ProgressService
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(progress service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// UpsertProgressRequest records a mastery level for one skill.
type UpsertProgressRequest struct {
	UserID  uint   `json:"userId" validate:"required"`
	SkillID uint   `json:"skillId" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=not_started level_1 level_2 level_3 level_4 level_5"`
}

// StageScoreResponse is the derived completion percentage for one stage.
type StageScoreResponse struct {
	UserID  uint `json:"user_id"`
	StageID uint `json:"stage_id"`
	Score   int  `json:"score"`
}

// List godoc
// @Summary List a user's progress rows
// @Tags progress
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} model.Progress
// @Failure 400 {object} errors.ErrorResponse
// @Router /progress/{userId} [get]
func (h *ProgressHandler) List(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	rows, err := h.progress.List(c.Request().Context(), uint(userID))
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rows)
}

// Upsert godoc
// @Summary Record the current mastery level for (user, skill)
// @Tags progress
// @Accept json
// @Produce json
// @Param request body UpsertProgressRequest true "Progress data"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /progress [post]
func (h *ProgressHandler) Upsert(c echo.Context) error {
	var req UpsertProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.progress.Upsert(c.Request().Context(), req.UserID, req.SkillID, req.Status); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// StageScore godoc
// @Summary Compute a user's completion percentage for one stage
// @Tags progress
// @Produce json
// @Param userId path int true "User ID"
// @Param stageId path int true "Stage ID"
// @Success 200 {object} StageScoreResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /progress/{userId}/score/{stageId} [get]
func (h *ProgressHandler) StageScore(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	stageID, err := strconv.Atoi(c.Param("stageId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid stage id")
	}

	score, err := h.progress.StageScore(c.Request().Context(), uint(userID), uint(stageID))
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, StageScoreResponse{
		UserID:  uint(userID),
		StageID: uint(stageID),
		Score:   score,
	})
}
