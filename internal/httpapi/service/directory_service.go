package service

import (
	"errors"
	"strings"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/dto"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/repository"

	"gorm.io/gorm"
)

// DirectoryService is the read-only public directory: browse and search
// profiles of users who opted into being listed.
type DirectoryService interface {
	Search(query, availability string) ([]dto.UserCardResponse, error)
	GetProfile(userID string) (*dto.ProfileResponse, error)
}

type directoryService struct {
	userRepo repository.UserRepository
}

func NewDirectoryService(userRepo repository.UserRepository) DirectoryService {
	return &directoryService{userRepo: userRepo}
}

// Search filters public users by name or offered-skill substring and by
// availability, case-insensitive. Empty filters return the full public set.
func (s *directoryService) Search(query, availability string) ([]dto.UserCardResponse, error) {
	users, err := s.userRepo.SearchPublic(strings.TrimSpace(query), strings.TrimSpace(availability))
	if err != nil {
		return nil, err
	}
	return dto.FromModelToUserCards(users), nil
}

// GetProfile returns a public profile with its skills. Private profiles are
// indistinguishable from missing ones.
func (s *directoryService) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindPublicByIDWithSkills(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return dto.FromModelToProfileResponse(user, false), nil
}
