package handler

import (
	"errors"
	"net/http"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

// statusForError maps a service error to its HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrSwapNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSkillLinkNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotYourSwap),
		errors.Is(err, service.ErrUserBanned):
		return http.StatusForbidden
	case errors.Is(err, service.ErrAlreadyRated),
		errors.Is(err, service.ErrSkillAlreadyAdded),
		errors.Is(err, service.ErrEmailInUse):
		return http.StatusConflict
	case errors.Is(err, service.ErrSelfSwap),
		errors.Is(err, service.ErrSwapNotPending),
		errors.Is(err, service.ErrSwapNotAccepted),
		errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrInvalidSkillKind):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

// currentUserID pulls the authenticated user's id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return "", false
	}
	return userID.(string), true
}
