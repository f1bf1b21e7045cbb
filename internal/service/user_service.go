package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "shuttletrack/internal/errors"
	"shuttletrack/internal/model"
	"shuttletrack/internal/repository"
)

// UserService exposes roster operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	// SetCurrentStage moves a user to another curriculum stage.
	SetCurrentStage(ctx context.Context, userID, stageID uint) error
	// AdminUpdate patches name/email/role/current_stage_id on a user.
	AdminUpdate(ctx context.Context, id uint, updates map[string]interface{}) (*model.User, error)
	AdminDelete(ctx context.Context, id uint) error
}

type userService struct {
	users  repository.UserRepository
	stages repository.StageRepository
}

// NewUserService creates the user service.
func NewUserService(users repository.UserRepository, stages repository.StageRepository) UserService {
	return &userService{users: users, stages: stages}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) SetCurrentStage(ctx context.Context, userID, stageID uint) error {
	if _, err := s.stages.FindByID(ctx, stageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("unknown stage %d", stageID)
		}
		return err
	}
	if err := s.users.UpdateCurrentStage(ctx, userID, stageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *userService) AdminUpdate(ctx context.Context, id uint, updates map[string]interface{}) (*model.User, error) {
	if role, ok := updates["role"].(string); ok && !model.ValidRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	user, err := s.users.ApplyUpdates(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUser
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) AdminDelete(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}
