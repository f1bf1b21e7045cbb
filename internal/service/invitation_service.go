package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "shuttletrack/internal/errors"
	"shuttletrack/internal/model"
	"shuttletrack/internal/repository"
)

// invitationTokenBytes sizes the random token. 24 bytes of entropy encodes to
// 32 URL-safe characters, comfortably past guessability.
const invitationTokenBytes = 24

// InvitationService issues and tracks single-use player invitations.
type InvitationService interface {
	// Create issues an invitation and returns its token. A coach may invite
	// the same email more than once; the newest pending invitation wins at
	// registration time.
	Create(ctx context.Context, email string, coachID uint) (*model.Invitation, error)
	// FindPending resolves a token to its pending invitation. Accepted and
	// unknown tokens are both reported as not found.
	FindPending(ctx context.Context, token string) (*model.Invitation, error)
	// Accept marks an invitation accepted. Idempotent.
	Accept(ctx context.Context, id uint) error
}

type invitationService struct {
	invitations repository.InvitationRepository
	users       repository.UserRepository
}

// NewInvitationService creates the invitation service.
func NewInvitationService(invitations repository.InvitationRepository, users repository.UserRepository) InvitationService {
	return &invitationService{invitations: invitations, users: users}
}

func (s *invitationService) Create(ctx context.Context, email string, coachID uint) (*model.Invitation, error) {
	if _, err := s.users.FindByID(ctx, coachID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup coach: %w", err)
	}

	token, err := generateInvitationToken()
	if err != nil {
		return nil, err
	}

	inv := &model.Invitation{
		Email:   email,
		CoachID: coachID,
		Token:   token,
		Status:  model.InvitationPending,
	}
	if err := s.invitations.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}
	return inv, nil
}

func (s *invitationService) FindPending(ctx context.Context, token string) (*model.Invitation, error) {
	inv, err := s.invitations.FindPendingByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("lookup invitation: %w", err)
	}
	return inv, nil
}

func (s *invitationService) Accept(ctx context.Context, id uint) error {
	return s.invitations.Accept(ctx, id)
}

// generateInvitationToken draws from crypto/rand; invitation tokens gate
// account creation, so guessable tokens are an access-control hole.
func generateInvitationToken() (string, error) {
	buf := make([]byte, invitationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
