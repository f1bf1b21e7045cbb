package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "shuttletrack/internal/errors"
	"shuttletrack/internal/model"
	"shuttletrack/internal/service"
)

// RubricHandler handles curriculum endpoints: the public rubric read and the
// admin stage/skill mutations.
type RubricHandler struct {
	rubric service.RubricService
}

// NewRubricHandler creates a new rubric handler.
func NewRubricHandler(rubric service.RubricService) *RubricHandler {
	return &RubricHandler{rubric: rubric}
}

// StageRequest creates or updates a curriculum stage.
type StageRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// SkillRequest creates or updates a skill with its five rubric level texts.
type SkillRequest struct {
	StageID     uint   `json:"stage_id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Level1      string `json:"level_1"`
	Level2      string `json:"level_2"`
	Level3      string `json:"level_3"`
	Level4      string `json:"level_4"`
	Level5      string `json:"level_5"`
}

// Rubric godoc
// @Summary Get every stage and skill of the curriculum
// @Tags rubric
// @Produce json
// @Success 200 {object} service.Rubric
// @Failure 500 {object} errors.ErrorResponse
// @Router /stages [get]
func (h *RubricHandler) Rubric(c echo.Context) error {
	rubric, err := h.rubric.Rubric(c.Request().Context())
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rubric)
}

// CreateStage godoc
// @Summary Create a curriculum stage
// @Tags admin
// @Accept json
// @Produce json
// @Param request body StageRequest true "Stage data"
// @Success 200 {object} model.Stage
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/stages [post]
func (h *RubricHandler) CreateStage(c echo.Context) error {
	var req StageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stage := &model.Stage{Name: req.Name, Description: req.Description}
	if err := h.rubric.CreateStage(c.Request().Context(), stage); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stage)
}

// UpdateStage godoc
// @Summary Update a curriculum stage
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Stage ID"
// @Param request body StageRequest true "Stage data"
// @Success 200 {object} model.Stage
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/stages/{id} [patch]
func (h *RubricHandler) UpdateStage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req StageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stage := &model.Stage{ID: uint(id), Name: req.Name, Description: req.Description}
	if err := h.rubric.UpdateStage(c.Request().Context(), stage); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stage)
}

// DeleteStage godoc
// @Summary Delete a curriculum stage
// @Tags admin
// @Produce json
// @Param id path int true "Stage ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/stages/{id} [delete]
func (h *RubricHandler) DeleteStage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.rubric.DeleteStage(c.Request().Context(), uint(id)); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// CreateSkill godoc
// @Summary Create a skill, optionally linked to a stage
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SkillRequest true "Skill data"
// @Success 200 {object} model.Skill
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/skills [post]
func (h *RubricHandler) CreateSkill(c echo.Context) error {
	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill := skillFromRequest(&req)
	if err := h.rubric.CreateSkill(c.Request().Context(), skill, req.StageID); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, skill)
}

// UpdateSkill godoc
// @Summary Update a skill
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Skill ID"
// @Param request body SkillRequest true "Skill data"
// @Success 200 {object} model.Skill
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/skills/{id} [patch]
func (h *RubricHandler) UpdateSkill(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill := skillFromRequest(&req)
	skill.ID = uint(id)
	if err := h.rubric.UpdateSkill(c.Request().Context(), skill); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, skill)
}

// DeleteSkill godoc
// @Summary Delete a skill and its stage associations
// @Tags admin
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/skills/{id} [delete]
func (h *RubricHandler) DeleteSkill(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.rubric.DeleteSkill(c.Request().Context(), uint(id)); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func skillFromRequest(req *SkillRequest) *model.Skill {
	return &model.Skill{
		Name:        req.Name,
		Description: req.Description,
		Level1:      req.Level1,
		Level2:      req.Level2,
		Level3:      req.Level3,
		Level4:      req.Level4,
		Level5:      req.Level5,
	}
}
