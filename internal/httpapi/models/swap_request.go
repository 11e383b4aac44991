package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SwapStatusPending  = "PENDING"
	SwapStatusAccepted = "ACCEPTED"
	SwapStatusRejected = "REJECTED"
)

// SwapRequest is a proposal from the requester to the requestee.
// Status only ever moves PENDING -> ACCEPTED or PENDING -> REJECTED;
// a PENDING request can also be deleted by the requester.
type SwapRequest struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	RequesterID string `gorm:"type:uuid;index;not null" json:"requester_id"`
	RequesteeID string `gorm:"type:uuid;index;not null" json:"requestee_id"`
	Message     string `json:"message"`
	Status      string `gorm:"default:'PENDING';not null" json:"status"`

	// each flag flips false -> true at most once, one per party
	RequesterHasRated bool `gorm:"default:false;not null" json:"requester_has_rated"`
	RequesteeHasRated bool `gorm:"default:false;not null" json:"requestee_has_rated"`

	CreatedAt time.Time `json:"created_at"`

	Requester *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Requestee *User `gorm:"foreignKey:RequesteeID" json:"requestee,omitempty"`
}

func (s *SwapRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

func (SwapRequest) TableName() string {
	return "swap_requests"
}
