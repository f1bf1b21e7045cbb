package repository

import (
	"context"

	"gorm.io/gorm"

	"shuttletrack/internal/model"
)

// StageRepository defines stage persistence operations.
type StageRepository interface {
	Create(ctx context.Context, stage *model.Stage) error
	FindByID(ctx context.Context, id uint) (*model.Stage, error)
	List(ctx context.Context) ([]model.Stage, error)
	Update(ctx context.Context, stage *model.Stage) error
	Delete(ctx context.Context, id uint) error
}

type stageRepository struct {
	db *gorm.DB
}

// NewStageRepository builds a GORM-backed repository.
func NewStageRepository(db *gorm.DB) StageRepository {
	return &stageRepository{db: db}
}

func (r *stageRepository) Create(ctx context.Context, stage *model.Stage) error {
	return r.db.WithContext(ctx).Create(stage).Error
}

func (r *stageRepository) FindByID(ctx context.Context, id uint) (*model.Stage, error) {
	var stage model.Stage
	if err := r.db.WithContext(ctx).First(&stage, id).Error; err != nil {
		return nil, err
	}
	return &stage, nil
}

func (r *stageRepository) List(ctx context.Context) ([]model.Stage, error) {
	var stages []model.Stage
	if err := r.db.WithContext(ctx).Order("id").Find(&stages).Error; err != nil {
		return nil, err
	}
	return stages, nil
}

func (r *stageRepository) Update(ctx context.Context, stage *model.Stage) error {
	return r.db.WithContext(ctx).Save(stage).Error
}

func (r *stageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Stage{}, id).Error
}
