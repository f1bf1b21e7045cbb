package service

import (
	"context"
	"fmt"
	"math"

	"shuttletrack/internal/model"
	"shuttletrack/internal/repository"
)

// ProgressService records and reads per-skill mastery levels.
type ProgressService interface {
	// Upsert records the current status for (user, skill); last write wins.
	Upsert(ctx context.Context, userID, skillID uint, status string) error
	// List returns all progress rows for a user; empty slice when none exist.
	List(ctx context.Context, userID uint) ([]model.Progress, error)
	// StageScore computes the completion percentage for one stage of the
	// user's rubric. Skills without a progress row count as not started.
	StageScore(ctx context.Context, userID, stageID uint) (int, error)
}

type progressService struct {
	progress repository.ProgressRepository
	skills   repository.SkillRepository
}

// NewProgressService creates the progress service.
func NewProgressService(progress repository.ProgressRepository, skills repository.SkillRepository) ProgressService {
	return &progressService{progress: progress, skills: skills}
}

func (s *progressService) Upsert(ctx context.Context, userID, skillID uint, status string) error {
	if !model.ValidStatus(status) {
		return fmt.Errorf("unknown progress status %q", status)
	}
	return s.progress.Upsert(ctx, userID, skillID, status)
}

func (s *progressService) List(ctx context.Context, userID uint) ([]model.Progress, error) {
	rows, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.Progress{}
	}
	return rows, nil
}

func (s *progressService) StageScore(ctx context.Context, userID, stageID uint) (int, error) {
	skills, err := s.skills.ListWithStage(ctx)
	if err != nil {
		return 0, err
	}
	var stageSkillIDs []uint
	for _, sk := range skills {
		if sk.StageID == stageID {
			stageSkillIDs = append(stageSkillIDs, sk.ID)
		}
	}

	rows, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return StageScore(stageSkillIDs, rows), nil
}

// StageScore is the derived completion percentage for a set of stage skills:
// round(100 * sum(level values) / (5 * skill count)). Never persisted.
func StageScore(stageSkillIDs []uint, rows []model.Progress) int {
	if len(stageSkillIDs) == 0 {
		return 0
	}

	inStage := make(map[uint]bool, len(stageSkillIDs))
	for _, id := range stageSkillIDs {
		inStage[id] = true
	}

	points := 0
	for _, row := range rows {
		if inStage[row.SkillID] {
			points += model.LevelValue(row.Status)
		}
	}

	total := 5 * len(stageSkillIDs)
	return int(math.Round(100 * float64(points) / float64(total)))
}
