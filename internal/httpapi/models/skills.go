package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill names are case-insensitive: "Python" and "python" are the same skill.
// The service layer looks up with ILIKE before creating.
type Skill struct {
	ID   string `gorm:"primaryKey;type:uuid" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (skill *Skill) BeforeCreate(tx *gorm.DB) (err error) {
	if skill.ID == "" {
		skill.ID = uuid.New().String()
	}
	return
}

func (Skill) TableName() string {
	return "skills"
}
