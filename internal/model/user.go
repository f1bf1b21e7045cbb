package model

import "time"

// Roles a user can hold. Players are invitation-gated; coaches invite them and
// admins manage the roster and the rubric.
const (
	RoleAdmin  = "admin"
	RoleCoach  = "coach"
	RolePlayer = "player"
)

// User represents a member of the coaching program.
type User struct {
	ID uint `json:"id" gorm:"primaryKey"`
	// ExternalUID is the identity provider's subject id. Nil until the user
	// authenticates through the provider for the first time; unique once set.
	ExternalUID    *string   `json:"external_uid,omitempty" gorm:"uniqueIndex;size:64"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string    `json:"-" gorm:"size:255"` // empty for provider-only accounts
	Role           string    `json:"role" gorm:"size:50;not null;default:'player'"`
	CurrentStageID uint      `json:"current_stage_id" gorm:"not null;default:1"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCoach || role == RolePlayer
}
