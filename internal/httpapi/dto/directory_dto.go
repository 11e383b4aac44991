package dto

import (
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"
)

// SearchUsersQuery: query params for the public directory.
// Both filters are optional; an empty query returns every public user.
type SearchUsersQuery struct {
	Query        string `form:"query" binding:"omitempty,max=100"`
	Availability string `form:"availability" binding:"omitempty,max=100"`
}

// UserCardResponse: one entry in the directory listing
type UserCardResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Image         string          `json:"image,omitempty"`
	Location      string          `json:"location,omitempty"`
	Availability  string          `json:"availability,omitempty"`
	AverageRating *float64        `json:"average_rating,omitempty"`
	SkillsOffered []SkillResponse `json:"skills_offered"`
}

// FromModelToUserCards converts search results for the directory page
func FromModelToUserCards(users []models.User) []UserCardResponse {
	cards := make([]UserCardResponse, 0, len(users))
	for _, u := range users {
		card := UserCardResponse{
			ID:            u.ID,
			Name:          u.Name,
			Image:         u.Image,
			Location:      u.Location,
			Availability:  u.Availability,
			AverageRating: u.AverageRating,
			SkillsOffered: make([]SkillResponse, 0, len(u.SkillsOffered)),
		}
		for _, link := range u.SkillsOffered {
			card.SkillsOffered = append(card.SkillsOffered, SkillResponse{ID: link.Skill.ID, Name: link.Skill.Name})
		}
		cards = append(cards, card)
	}
	return cards
}
