package dto

import (
	"time"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"
)

// CreateSwapRequestDTO: payload for proposing a swap to another user
type CreateSwapRequestDTO struct {
	RequesteeID string `json:"requestee_id" binding:"required,uuid"`
	Message     string `json:"message" binding:"max=500"`
}

// RespondSwapRequestDTO: payload for the requestee accepting or rejecting
type RespondSwapRequestDTO struct {
	Status string `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
}

// SwapPartyResponse is the slim user view embedded in swap listings
type SwapPartyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// SwapRequestResponse for returning a swap request with its counterpart
type SwapRequestResponse struct {
	ID                string             `json:"id"`
	Message           string             `json:"message"`
	Status            string             `json:"status"`
	RequesterHasRated bool               `json:"requester_has_rated"`
	RequesteeHasRated bool               `json:"requestee_has_rated"`
	CreatedAt         time.Time          `json:"created_at"`
	Requester         *SwapPartyResponse `json:"requester,omitempty"`
	Requestee         *SwapPartyResponse `json:"requestee,omitempty"`
}

// FromModelToSwapResponse converts a SwapRequest model to its response DTO
func FromModelToSwapResponse(swap *models.SwapRequest) *SwapRequestResponse {
	resp := &SwapRequestResponse{
		ID:                swap.ID,
		Message:           swap.Message,
		Status:            swap.Status,
		RequesterHasRated: swap.RequesterHasRated,
		RequesteeHasRated: swap.RequesteeHasRated,
		CreatedAt:         swap.CreatedAt,
	}
	if swap.Requester != nil {
		resp.Requester = &SwapPartyResponse{ID: swap.Requester.ID, Name: swap.Requester.Name, Image: swap.Requester.Image}
	}
	if swap.Requestee != nil {
		resp.Requestee = &SwapPartyResponse{ID: swap.Requestee.ID, Name: swap.Requestee.Name, Image: swap.Requestee.Image}
	}
	return resp
}

// FromModelToSwapResponses converts a slice of swap requests
func FromModelToSwapResponses(swaps []models.SwapRequest) []SwapRequestResponse {
	responses := make([]SwapRequestResponse, 0, len(swaps))
	for i := range swaps {
		responses = append(responses, *FromModelToSwapResponse(&swaps[i]))
	}
	return responses
}
