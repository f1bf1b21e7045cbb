package model

import "time"

// Progress statuses. A skill with no progress row counts as StatusNotStarted.
const (
	StatusNotStarted = "not_started"
	StatusLevel1     = "level_1"
	StatusLevel2     = "level_2"
	StatusLevel3     = "level_3"
	StatusLevel4     = "level_4"
	StatusLevel5     = "level_5"
)

// Progress records a user's current mastery level for one skill. There is at
// most one row per (user, skill) pair; writes overwrite, no history is kept.
type Progress struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	SkillID   uint      `json:"skill_id" gorm:"primaryKey;autoIncrement:false"`
	Status    string    `json:"status" gorm:"size:50;not null;default:'not_started'"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidStatus reports whether status is one of the known progress statuses.
func ValidStatus(status string) bool {
	switch status {
	case StatusNotStarted, StatusLevel1, StatusLevel2, StatusLevel3, StatusLevel4, StatusLevel5:
		return true
	}
	return false
}

// LevelValue maps a status to its point value: not_started is 0, level_k is k.
func LevelValue(status string) int {
	switch status {
	case StatusLevel1:
		return 1
	case StatusLevel2:
		return 2
	case StatusLevel3:
		return 3
	case StatusLevel4:
		return 4
	case StatusLevel5:
		return 5
	}
	return 0
}
