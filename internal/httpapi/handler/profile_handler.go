package handler

import (
	"net/http"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/dto"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// RegisterRoutes sets up routes for the caller's own profile
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profileRoutes := router.Group("/profile")
	{
		profileRoutes.GET("", h.GetProfile)
		profileRoutes.PUT("", h.UpdateProfile)
		profileRoutes.POST("/skills", h.AddSkill)
		profileRoutes.DELETE("/skills/:skill_id", h.RemoveSkill)
	}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetOwn(actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.UpdateProfile(actorID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AddSkill handles POST /api/profile/skills
func (h *ProfileHandler) AddSkill(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.AddSkillDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	skill, err := h.profileService.AddSkill(actorID, req.Name, req.Kind)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, skill)
}

// RemoveSkill handles DELETE /api/profile/skills/:skill_id?type=offered|wanted
func (h *ProfileHandler) RemoveSkill(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	kind := c.DefaultQuery("type", service.SkillKindOffered)

	if err := h.profileService.RemoveSkill(actorID, c.Param("skill_id"), kind); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "skill removed"})
}
