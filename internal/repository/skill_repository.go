package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shuttletrack/internal/model"
)

// SkillRepository defines skill and stage-association persistence operations.
type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	FindByID(ctx context.Context, id uint) (*model.Skill, error)
	// ListWithStage returns every skill flattened with its stage association.
	ListWithStage(ctx context.Context) ([]model.SkillWithStage, error)
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id uint) error
	// LinkStage associates a skill with a stage; re-linking an existing pair
	// is a no-op.
	LinkStage(ctx context.Context, stageID, skillID uint) error
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository builds a GORM-backed repository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) FindByID(ctx context.Context, id uint) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) ListWithStage(ctx context.Context) ([]model.SkillWithStage, error) {
	var rows []model.SkillWithStage
	if err := r.db.WithContext(ctx).Model(&model.Skill{}).
		Select("skills.*, stage_skills.stage_id AS stage_id").
		Joins("JOIN stage_skills ON stage_skills.skill_id = skills.id").
		Order("skills.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *skillRepository) Update(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

func (r *skillRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("skill_id = ?", id).Delete(&model.StageSkill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Skill{}, id).Error
	})
}

func (r *skillRepository) LinkStage(ctx context.Context, stageID, skillID uint) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.StageSkill{StageID: stageID, SkillID: skillID}).Error
}
