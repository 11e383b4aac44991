package handler

import (
	"net/http"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/dto"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	directoryService service.DirectoryService
	feedbackService  service.FeedbackService
}

func NewDirectoryHandler(directoryService service.DirectoryService, feedbackService service.FeedbackService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService, feedbackService: feedbackService}
}

// RegisterRoutes sets up the public directory routes
func (h *DirectoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	userRoutes := router.Group("/users")
	{
		userRoutes.GET("", h.SearchUsers)
		userRoutes.GET("/:user_id", h.GetUserProfile)
		userRoutes.GET("/:user_id/ratings", h.ListUserRatings)
	}
}

// SearchUsers handles GET /api/users?query=&availability=
func (h *DirectoryHandler) SearchUsers(c *gin.Context) {
	var q dto.SearchUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := h.directoryService.Search(q.Query, q.Availability)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// GetUserProfile handles GET /api/users/:user_id
func (h *DirectoryHandler) GetUserProfile(c *gin.Context) {
	profile, err := h.directoryService.GetProfile(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListUserRatings handles GET /api/users/:user_id/ratings
func (h *DirectoryHandler) ListUserRatings(c *gin.Context) {
	ratings, err := h.feedbackService.ListForUser(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings, "count": len(ratings)})
}
