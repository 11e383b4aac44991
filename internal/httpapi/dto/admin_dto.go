package dto

import (
	"time"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"
)

// StatsResponse: aggregate counts for the admin dashboard
type StatsResponse struct {
	TotalUsers  int64 `json:"total_users"`
	TotalSwaps  int64 `json:"total_swaps"`
	TotalSkills int64 `json:"total_skills"`
}

// AdminUserResponse: row in the admin user management table
type AdminUserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsBanned  bool      `json:"is_banned"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToAdminUserResponses converts users for the admin table
func FromModelToAdminUserResponses(users []models.User) []AdminUserResponse {
	responses := make([]AdminUserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, AdminUserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			IsBanned:  u.IsBanned,
			CreatedAt: u.CreatedAt,
		})
	}
	return responses
}
