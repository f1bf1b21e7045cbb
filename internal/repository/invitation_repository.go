package repository

import (
	"context"

	"gorm.io/gorm"

	"shuttletrack/internal/model"
)

// InvitationRepository defines invitation persistence operations.
type InvitationRepository interface {
	Create(ctx context.Context, invitation *model.Invitation) error
	// FindPendingByToken loads a pending invitation with its coach preloaded.
	// Accepted and unknown tokens both miss, so callers cannot probe status.
	FindPendingByToken(ctx context.Context, token string) (*model.Invitation, error)
	// FindLatestPendingByEmail returns the most recently issued pending
	// invitation for the email. Duplicate pending invitations are allowed;
	// the newest one wins.
	FindLatestPendingByEmail(ctx context.Context, email string) (*model.Invitation, error)
	// Accept transitions pending -> accepted. Accepting an already-accepted
	// invitation is a no-op, not an error.
	Accept(ctx context.Context, id uint) error
}

type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository builds a GORM-backed repository.
func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(ctx context.Context, invitation *model.Invitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

func (r *invitationRepository) FindPendingByToken(ctx context.Context, token string) (*model.Invitation, error) {
	var inv model.Invitation
	if err := r.db.WithContext(ctx).
		Preload("Coach").
		Where("token = ? AND status = ?", token, model.InvitationPending).
		First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invitationRepository) FindLatestPendingByEmail(ctx context.Context, email string) (*model.Invitation, error) {
	var inv model.Invitation
	if err := r.db.WithContext(ctx).
		Where("email = ? AND status = ?", email, model.InvitationPending).
		Order("created_at DESC").
		First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invitationRepository) Accept(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Invitation{}).
		Where("id = ?", id).
		Update("status", model.InvitationAccepted).Error
}
