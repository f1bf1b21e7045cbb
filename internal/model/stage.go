package model

// Stage is an ordered phase of the training curriculum grouping several skills.
type Stage struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
}
