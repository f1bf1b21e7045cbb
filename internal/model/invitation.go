package model

import "time"

// Invitation statuses. The pending -> accepted transition is one-way.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
)

// Invitation is a single-use token a coach issues so a player may register.
type Invitation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	CoachID   uint      `json:"coach_id" gorm:"not null"`
	Token     string    `json:"token" gorm:"uniqueIndex;size:64;not null"`
	Status    string    `json:"status" gorm:"size:20;not null;default:'pending'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Coach *User `json:"coach,omitempty" gorm:"foreignKey:CoachID"`
}
