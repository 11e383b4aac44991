package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	Image        string `json:"image,omitempty"`
	Location     string `json:"location,omitempty"`
	Availability string `json:"availability,omitempty"`
	IsPublic     bool   `gorm:"default:true;not null" json:"is_public"`
	IsBanned     bool   `gorm:"default:false;not null" json:"is_banned"`
	Role         string `gorm:"default:'user';not null" json:"role"` // only 2 roles: "user", "admin"

	// nil until the user receives the first rating, so "no ratings yet"
	// stays distinguishable from a real average
	AverageRating *float64 `json:"average_rating,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SkillsOffered []UserSkillOffered `gorm:"foreignKey:UserID" json:"-"`
	SkillsWanted  []UserSkillWanted  `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
