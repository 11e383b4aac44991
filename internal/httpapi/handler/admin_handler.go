package handler

import (
	"net/http"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// RegisterRoutes sets up moderation routes. The group is mounted behind
// both the auth middleware and the admin role check.
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	adminRoutes := router.Group("/admin")
	{
		adminRoutes.GET("/stats", h.GetStats)
		adminRoutes.GET("/users", h.ListUsers)
		adminRoutes.POST("/users/:user_id/ban", h.ToggleBan)
	}
}

// GetStats handles GET /api/admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.Stats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// ToggleBan handles POST /api/admin/users/:user_id/ban
func (h *AdminHandler) ToggleBan(c *gin.Context) {
	if err := h.adminService.ToggleBan(c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ban state toggled"})
}
