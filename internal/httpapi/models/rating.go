package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is the feedback one party leaves for the other after an accepted
// swap. One per (swap request, rater), guarded by the hasRated flags.
type Rating struct {
	ID            string    `gorm:"primaryKey;type:uuid" json:"id"`
	Score         int       `gorm:"not null" json:"score"` // 1..5
	Comment       string    `json:"comment"`
	RaterID       string    `gorm:"type:uuid;index;not null" json:"rater_id"`
	RateeID       string    `gorm:"type:uuid;index;not null" json:"ratee_id"`
	SwapRequestID string    `gorm:"type:uuid;index;not null" json:"swap_request_id"`
	CreatedAt     time.Time `json:"created_at"`

	Rater *User `gorm:"foreignKey:RaterID" json:"rater,omitempty"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

func (Rating) TableName() string {
	return "ratings"
}
