package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shuttletrack/internal/model"
	"shuttletrack/internal/provider"
	"shuttletrack/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByExternalUIDOrEmail(ctx context.Context, externalUID, email string) (*model.User, error) {
	args := m.Called(ctx, externalUID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateExternalUID(ctx context.Context, id uint, externalUID string) error {
	args := m.Called(ctx, id, externalUID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateCurrentStage(ctx context.Context, id, stageID uint) error {
	args := m.Called(ctx, id, stageID)
	return args.Error(0)
}

func (m *MockUserRepository) ApplyUpdates(ctx context.Context, id uint, updates map[string]interface{}) (*model.User, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInvitationRepository is a mock implementation of repository.InvitationRepository.
type MockInvitationRepository struct {
	mock.Mock
}

func (m *MockInvitationRepository) Create(ctx context.Context, invitation *model.Invitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}

func (m *MockInvitationRepository) FindPendingByToken(ctx context.Context, token string) (*model.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) FindLatestPendingByEmail(ctx context.Context, email string) (*model.Invitation, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) Accept(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProgressRepository is a mock implementation of repository.ProgressRepository.
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Upsert(ctx context.Context, userID, skillID uint, status string) error {
	args := m.Called(ctx, userID, skillID, status)
	return args.Error(0)
}

func (m *MockProgressRepository) ListByUser(ctx context.Context, userID uint) ([]model.Progress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Progress), args.Error(1)
}

// MockStageRepository is a mock implementation of repository.StageRepository.
type MockStageRepository struct {
	mock.Mock
}

func (m *MockStageRepository) Create(ctx context.Context, stage *model.Stage) error {
	args := m.Called(ctx, stage)
	return args.Error(0)
}

func (m *MockStageRepository) FindByID(ctx context.Context, id uint) (*model.Stage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stage), args.Error(1)
}

func (m *MockStageRepository) List(ctx context.Context) ([]model.Stage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Stage), args.Error(1)
}

func (m *MockStageRepository) Update(ctx context.Context, stage *model.Stage) error {
	args := m.Called(ctx, stage)
	return args.Error(0)
}

func (m *MockStageRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSkillRepository is a mock implementation of repository.SkillRepository.
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) Create(ctx context.Context, skill *model.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) FindByID(ctx context.Context, id uint) (*model.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Skill), args.Error(1)
}

func (m *MockSkillRepository) ListWithStage(ctx context.Context) ([]model.SkillWithStage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SkillWithStage), args.Error(1)
}

func (m *MockSkillRepository) Update(ctx context.Context, skill *model.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSkillRepository) LinkStage(ctx context.Context, stageID, skillID uint) error {
	args := m.Called(ctx, stageID, skillID)
	return args.Error(0)
}

// fakeTxManager runs the transaction body against the supplied mocks; no
// rollback semantics, each mock expectation stands on its own.
type fakeTxManager struct {
	users       repository.UserRepository
	invitations repository.InvitationRepository
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context, users repository.UserRepository, invitations repository.InvitationRepository) error) error {
	return fn(ctx, m.users, m.invitations)
}

// MockIdentityProvider is a mock implementation of IdentityProvider.
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockIdentityProvider) GetUser(ctx context.Context, accessToken string) (*provider.Identity, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Identity), args.Error(1)
}
