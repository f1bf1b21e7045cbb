package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shuttletrack/internal/cache"
	"shuttletrack/internal/model"
	"shuttletrack/internal/repository"
)

const (
	rubricCacheKey = "rubric:v1"
	rubricCacheTTL = 5 * time.Minute
)

// Rubric is the full curriculum payload the dashboard renders: every stage
// plus every skill flattened with its stage association.
type Rubric struct {
	Stages []model.Stage          `json:"stages"`
	Skills []model.SkillWithStage `json:"skills"`
}

// RubricService serves the read-mostly curriculum and its admin mutations.
type RubricService interface {
	Rubric(ctx context.Context) (*Rubric, error)

	CreateStage(ctx context.Context, stage *model.Stage) error
	UpdateStage(ctx context.Context, stage *model.Stage) error
	DeleteStage(ctx context.Context, id uint) error

	// CreateSkill stores a skill and, when stageID is non-zero, links it to
	// that stage.
	CreateSkill(ctx context.Context, skill *model.Skill, stageID uint) error
	UpdateSkill(ctx context.Context, skill *model.Skill) error
	DeleteSkill(ctx context.Context, id uint) error
}

type rubricService struct {
	stages repository.StageRepository
	skills repository.SkillRepository
	cache  *cache.Client
}

// NewRubricService creates the rubric service.
func NewRubricService(stages repository.StageRepository, skills repository.SkillRepository, cacheClient *cache.Client) RubricService {
	return &rubricService{stages: stages, skills: skills, cache: cacheClient}
}

func (s *rubricService) Rubric(ctx context.Context) (*Rubric, error) {
	if data, _ := s.cache.Get(ctx, rubricCacheKey); data != nil {
		var cached Rubric
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	stages, err := s.stages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	skills, err := s.skills.ListWithStage(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	if skills == nil {
		skills = []model.SkillWithStage{}
	}

	rubric := &Rubric{Stages: stages, Skills: skills}
	if payload, err := json.Marshal(rubric); err == nil {
		_ = s.cache.Set(ctx, rubricCacheKey, payload, rubricCacheTTL)
	}
	return rubric, nil
}

func (s *rubricService) CreateStage(ctx context.Context, stage *model.Stage) error {
	if err := s.stages.Create(ctx, stage); err != nil {
		return err
	}
	return s.cache.Delete(ctx, rubricCacheKey)
}

func (s *rubricService) UpdateStage(ctx context.Context, stage *model.Stage) error {
	if err := s.stages.Update(ctx, stage); err != nil {
		return err
	}
	return s.cache.Delete(ctx, rubricCacheKey)
}

func (s *rubricService) DeleteStage(ctx context.Context, id uint) error {
	if err := s.stages.Delete(ctx, id); err != nil {
		return err
	}
	return s.cache.Delete(ctx, rubricCacheKey)
}

func (s *rubricService) CreateSkill(ctx context.Context, skill *model.Skill, stageID uint) error {
	if err := s.skills.Create(ctx, skill); err != nil {
		return err
	}
	if stageID != 0 {
		if err := s.skills.LinkStage(ctx, stageID, skill.ID); err != nil {
			return err
		}
	}
	return s.cache.Delete(ctx, rubricCacheKey)
}

func (s *rubricService) UpdateSkill(ctx context.Context, skill *model.Skill) error {
	if err := s.skills.Update(ctx, skill); err != nil {
		return err
	}
	return s.cache.Delete(ctx, rubricCacheKey)
}

func (s *rubricService) DeleteSkill(ctx context.Context, id uint) error {
	if err := s.skills.Delete(ctx, id); err != nil {
		return err
	}
	return s.cache.Delete(ctx, rubricCacheKey)
}
