package model

// Skill is one of the 26 lettered competencies of the badminton alphabet.
// Level1 through Level5 hold the textual rubric for each mastery level.
type Skill struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
	Level1      string `json:"level_1" gorm:"column:level_1;type:text"`
	Level2      string `json:"level_2" gorm:"column:level_2;type:text"`
	Level3      string `json:"level_3" gorm:"column:level_3;type:text"`
	Level4      string `json:"level_4" gorm:"column:level_4;type:text"`
	Level5      string `json:"level_5" gorm:"column:level_5;type:text"`
}

// StageSkill links a skill to a curriculum stage. A skill may appear in more
// than one stage; the pair is unique.
type StageSkill struct {
	StageID uint `json:"stage_id" gorm:"primaryKey;autoIncrement:false"`
	SkillID uint `json:"skill_id" gorm:"primaryKey;autoIncrement:false"`
}

// SkillWithStage is a skill flattened with its stage association, the shape
// the dashboard consumes.
type SkillWithStage struct {
	Skill
	StageID uint `json:"stage_id"`
}
