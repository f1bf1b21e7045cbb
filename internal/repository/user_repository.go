package repository

import (
	"context"

	"gorm.io/gorm"

	"shuttletrack/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// FindByExternalUIDOrEmail returns the first user matching either key.
	// Under the uniqueness invariants at most one should exist.
	FindByExternalUIDOrEmail(ctx context.Context, externalUID, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	// UpdateExternalUID attaches a provider uid to an existing user (account
	// linking). The only mutation path for external_uid after creation.
	UpdateExternalUID(ctx context.Context, id uint, externalUID string) error
	UpdateCurrentStage(ctx context.Context, id, stageID uint) error
	// ApplyUpdates patches the given columns and returns the fresh record.
	ApplyUpdates(ctx context.Context, id uint, updates map[string]interface{}) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByExternalUIDOrEmail(ctx context.Context, externalUID, email string) (*model.User, error) {
	var user model.User
	q := r.db.WithContext(ctx)
	if externalUID != "" {
		q = q.Where("external_uid = ? OR email = ?", externalUID, email)
	} else {
		q = q.Where("email = ?", email)
	}
	if err := q.First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdateExternalUID(ctx context.Context, id uint, externalUID string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("external_uid", externalUID).Error
}

func (r *userRepository) UpdateCurrentStage(ctx context.Context, id, stageID uint) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("current_stage_id", stageID).Error
}

func (r *userRepository) ApplyUpdates(ctx context.Context, id uint, updates map[string]interface{}) (*model.User, error) {
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}
