package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "shuttletrack/internal/errors"
	"shuttletrack/internal/model"
	"shuttletrack/internal/provider"
	"shuttletrack/internal/repository"
)

// IdentityProvider is the slice of the provider client the sync flow needs.
type IdentityProvider interface {
	Configured() bool
	GetUser(ctx context.Context, accessToken string) (*provider.Identity, error)
}

// SyncInput is the authentication claim bundle a client submits. Client-sent
// values are hints only; anything verified through the access token wins.
type SyncInput struct {
	ExternalUID     string
	Email           string
	Name            string
	AccessToken     string
	Role            string
	InvitationToken string
}

// SyncService reconciles an authentication event with the local user table:
// one canonical user per identity, never a silent duplicate.
type SyncService interface {
	Sync(ctx context.Context, in SyncInput) (*model.User, error)
}

type syncService struct {
	users       repository.UserRepository
	invitations repository.InvitationRepository
	tx          repository.TxManager
	provider    IdentityProvider
}

// NewSyncService creates the reconciliation service.
func NewSyncService(
	users repository.UserRepository,
	invitations repository.InvitationRepository,
	tx repository.TxManager,
	idp IdentityProvider,
) SyncService {
	return &syncService{users: users, invitations: invitations, tx: tx, provider: idp}
}

// Sync resolves the claim bundle to exactly one user record.
//
// With an access token, the token is exchanged with the provider and the
// verified identity overrides anything the client sent. A brand-new player
// must hold a pending invitation (matched by email first, explicit token as
// fallback); the invitation is accepted and the user created in one
// transaction. An existing user without an external uid gets it attached
// (account linking); otherwise the call is an idempotent lookup.
func (s *syncService) Sync(ctx context.Context, in SyncInput) (*model.User, error) {
	verifiedUID := in.ExternalUID
	verifiedEmail := in.Email
	var meta provider.Metadata

	if in.AccessToken != "" {
		if !s.provider.Configured() {
			return nil, apperrors.ErrNotConfigured
		}
		identity, err := s.provider.GetUser(ctx, in.AccessToken)
		if err != nil {
			return nil, err
		}
		verifiedUID = identity.UID
		verifiedEmail = identity.Email
		meta = identity.Metadata
	}

	if verifiedEmail == "" {
		return nil, apperrors.ErrEmailRequired
	}

	existing, err := s.users.FindByExternalUIDOrEmail(ctx, verifiedUID, verifiedEmail)
	switch {
	case err == nil:
		return s.reconcileExisting(ctx, existing, verifiedUID)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.createUser(ctx, in, verifiedUID, verifiedEmail, meta)
	default:
		return nil, fmt.Errorf("lookup user: %w", err)
	}
}

// reconcileExisting handles the two settled branches: first provider login of
// a locally registered user (attach the uid) and plain re-authentication.
func (s *syncService) reconcileExisting(ctx context.Context, existing *model.User, verifiedUID string) (*model.User, error) {
	if existing.ExternalUID == nil && verifiedUID != "" {
		if err := s.users.UpdateExternalUID(ctx, existing.ID, verifiedUID); err != nil {
			return nil, fmt.Errorf("link external uid: %w", err)
		}
		existing.ExternalUID = &verifiedUID
	}
	return existing, nil
}

func (s *syncService) createUser(ctx context.Context, in SyncInput, verifiedUID, verifiedEmail string, meta provider.Metadata) (*model.User, error) {
	role := firstNonEmpty(in.Role, meta.Role, model.RolePlayer)
	name := firstNonEmpty(in.Name, meta.FullName, localPart(verifiedEmail))

	user := &model.User{
		Name:  name,
		Email: verifiedEmail,
		Role:  role,
	}
	if verifiedUID != "" {
		user.ExternalUID = &verifiedUID
	}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context, users repository.UserRepository, invitations repository.InvitationRepository) error {
		if role == model.RolePlayer {
			inv, err := resolveInvitation(ctx, invitations, verifiedEmail, in.InvitationToken)
			if err != nil {
				return err
			}
			// Accept before creating: a crash here leaves a consumed
			// invitation rather than a reusable one.
			if err := invitations.Accept(ctx, inv.ID); err != nil {
				return fmt.Errorf("accept invitation: %w", err)
			}
		}
		return users.Create(ctx, user)
	})
	if err == nil {
		return user, nil
	}

	// A concurrent first registration for the same identity can lose the
	// uniqueness race; the winner's row is the canonical one.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		winner, ferr := s.users.FindByExternalUIDOrEmail(ctx, verifiedUID, verifiedEmail)
		if ferr != nil {
			return nil, apperrors.ErrDuplicateUser
		}
		return s.reconcileExisting(ctx, winner, verifiedUID)
	}
	return nil, err
}

// resolveInvitation locates the invitation that admits a new player: the most
// recent pending invitation for the email, or the explicitly supplied token.
// A token that is unknown or already consumed does not admit anyone.
func resolveInvitation(ctx context.Context, invitations repository.InvitationRepository, email, explicitToken string) (*model.Invitation, error) {
	inv, err := invitations.FindLatestPendingByEmail(ctx, email)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup invitation: %w", err)
	}

	if explicitToken == "" {
		return nil, apperrors.ErrInvitationRequired
	}
	inv, err = invitations.FindPendingByToken(ctx, explicitToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationRequired
		}
		return nil, fmt.Errorf("lookup invitation token: %w", err)
	}
	return inv, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// localPart returns everything before the @ of an email address.
func localPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
