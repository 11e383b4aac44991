package models

// Join rows linking users to skills. Composite primary key keeps the pair
// unique per (user, skill); a duplicate insert fails on the key.

type UserSkillOffered struct {
	UserID  string `gorm:"primaryKey;type:uuid" json:"user_id"`
	SkillID string `gorm:"primaryKey;type:uuid" json:"skill_id"`
	Skill   Skill  `gorm:"foreignKey:SkillID" json:"skill"`
}

func (UserSkillOffered) TableName() string {
	return "user_skills_offered"
}

type UserSkillWanted struct {
	UserID  string `gorm:"primaryKey;type:uuid" json:"user_id"`
	SkillID string `gorm:"primaryKey;type:uuid" json:"skill_id"`
	Skill   Skill  `gorm:"foreignKey:SkillID" json:"skill"`
}

func (UserSkillWanted) TableName() string {
	return "user_skills_wanted"
}
