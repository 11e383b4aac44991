package dto

import (
	"time"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"
)

// SubmitFeedbackDTO: payload for rating the other party of an accepted swap.
// Score range is re-checked in the service so the bound stays enforced for
// callers that bypass the HTTP layer.
type SubmitFeedbackDTO struct {
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=500"`
}

// RatingResponse for returning a rating on a public profile
type RatingResponse struct {
	RaterName string    `json:"rater_name"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	resp := &RatingResponse{
		Score:     rating.Score,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	}
	if rating.Rater != nil {
		resp.RaterName = rating.Rater.Name
	}
	return resp
}
