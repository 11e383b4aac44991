package dto

import (
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"
)

// UpdateProfileDTO: payload for editing the caller's own profile.
// Nil fields are left untouched.
type UpdateProfileDTO struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Location     *string `json:"location,omitempty" binding:"omitempty,max=100"`
	Availability *string `json:"availability,omitempty" binding:"omitempty,max=100"`
}

// AddSkillDTO: payload for attaching a skill to the caller's profile
type AddSkillDTO struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Kind string `json:"kind" binding:"required,oneof=offered wanted"`
}

// SkillResponse for returning a skill
type SkillResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProfileResponse for returning a user profile with skills
type ProfileResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email,omitempty"` // only on own profile
	Image         string          `json:"image,omitempty"`
	Location      string          `json:"location,omitempty"`
	Availability  string          `json:"availability,omitempty"`
	IsPublic      bool            `json:"is_public"`
	AverageRating *float64        `json:"average_rating,omitempty"`
	SkillsOffered []SkillResponse `json:"skills_offered"`
	SkillsWanted  []SkillResponse `json:"skills_wanted"`
}

// FromModelToProfileResponse converts a User with preloaded skills.
// ownProfile controls whether the email is included.
func FromModelToProfileResponse(user *models.User, ownProfile bool) *ProfileResponse {
	resp := &ProfileResponse{
		ID:            user.ID,
		Name:          user.Name,
		Image:         user.Image,
		Location:      user.Location,
		Availability:  user.Availability,
		IsPublic:      user.IsPublic,
		AverageRating: user.AverageRating,
		SkillsOffered: make([]SkillResponse, 0, len(user.SkillsOffered)),
		SkillsWanted:  make([]SkillResponse, 0, len(user.SkillsWanted)),
	}
	if ownProfile {
		resp.Email = user.Email
	}
	for _, link := range user.SkillsOffered {
		resp.SkillsOffered = append(resp.SkillsOffered, SkillResponse{ID: link.Skill.ID, Name: link.Skill.Name})
	}
	for _, link := range user.SkillsWanted {
		resp.SkillsWanted = append(resp.SkillsWanted, SkillResponse{ID: link.Skill.ID, Name: link.Skill.Name})
	}
	return resp
}
