package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a function with user and invitation repositories bound to a
// single database transaction, so invitation acceptance and user creation
// either both commit or both roll back.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context, users UserRepository, invitations InvitationRepository) error) error
}

type txManager struct {
	db *gorm.DB
}

// NewTxManager builds a GORM-backed transaction manager.
func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db: db}
}

func (m *txManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context, users UserRepository, invitations InvitationRepository) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &userRepository{db: tx}, &invitationRepository{db: tx})
	})
}
