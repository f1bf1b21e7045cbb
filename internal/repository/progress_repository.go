package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shuttletrack/internal/model"
)

// ProgressRepository defines progress persistence operations.
type ProgressRepository interface {
	// Upsert inserts or overwrites the single row for (user, skill),
	// stamping the write time. Last write wins; no history is kept.
	Upsert(ctx context.Context, userID, skillID uint, status string) error
	ListByUser(ctx context.Context, userID uint) ([]model.Progress, error)
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository builds a GORM-backed repository.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Upsert(ctx context.Context, userID, skillID uint, status string) error {
	row := model.Progress{
		UserID:    userID,
		SkillID:   skillID,
		Status:    status,
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&row).Error
}

func (r *progressRepository) ListByUser(ctx context.Context, userID uint) ([]model.Progress, error) {
	var rows []model.Progress
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
