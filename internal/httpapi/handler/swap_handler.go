package handler

import (
	"net/http"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/dto"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type SwapHandler struct {
	swapService     service.SwapService
	feedbackService service.FeedbackService
}

func NewSwapHandler(swapService service.SwapService, feedbackService service.FeedbackService) *SwapHandler {
	return &SwapHandler{swapService: swapService, feedbackService: feedbackService}
}

// RegisterRoutes sets up swap lifecycle routes. All of them require auth;
// the group is mounted behind the auth middleware.
func (h *SwapHandler) RegisterRoutes(router *gin.RouterGroup) {
	swapRoutes := router.Group("/swaps")
	{
		swapRoutes.POST("", h.CreateSwap)
		swapRoutes.GET("/incoming", h.ListIncoming)
		swapRoutes.GET("/outgoing", h.ListOutgoing)
		swapRoutes.PATCH("/:swap_id/status", h.RespondToSwap)
		swapRoutes.DELETE("/:swap_id", h.WithdrawSwap)
		swapRoutes.POST("/:swap_id/feedback", h.SubmitFeedback)
	}
}

// CreateSwap handles POST /api/swaps
func (h *SwapHandler) CreateSwap(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSwapRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	swap, err := h.swapService.Create(actorID, req.RequesteeID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, swap)
}

// ListIncoming handles GET /api/swaps/incoming
func (h *SwapHandler) ListIncoming(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	swaps, err := h.swapService.ListIncoming(actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"swaps": swaps, "count": len(swaps)})
}

// ListOutgoing handles GET /api/swaps/outgoing
func (h *SwapHandler) ListOutgoing(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	swaps, err := h.swapService.ListOutgoing(actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"swaps": swaps, "count": len(swaps)})
}

// RespondToSwap handles PATCH /api/swaps/:swap_id/status
func (h *SwapHandler) RespondToSwap(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.RespondSwapRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.swapService.Respond(c.Param("swap_id"), actorID, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "swap request updated"})
}

// WithdrawSwap handles DELETE /api/swaps/:swap_id
func (h *SwapHandler) WithdrawSwap(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.swapService.Withdraw(c.Param("swap_id"), actorID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "swap request withdrawn"})
}

// SubmitFeedback handles POST /api/swaps/:swap_id/feedback
func (h *SwapHandler) SubmitFeedback(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitFeedbackDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.feedbackService.SubmitFeedback(actorID, c.Param("swap_id"), req.Score, req.Comment); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "feedback submitted"})
}
