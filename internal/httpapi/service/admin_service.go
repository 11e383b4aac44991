package service

import (
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/dto"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/repository"
	"github.com/Kecyverse/skill-swap-platform/internal/invalidation"
)

// AdminService backs the moderation dashboard: aggregate counts, the user
// table and the ban toggle.
type AdminService interface {
	ToggleBan(userID string) error
	Stats() (*dto.StatsResponse, error)
	ListUsers() ([]dto.AdminUserResponse, error)
}

type adminService struct {
	userRepo  repository.UserRepository
	swapRepo  repository.SwapRequestRepository
	skillRepo repository.SkillRepository
	views     invalidation.Invalidator
}

func NewAdminService(
	userRepo repository.UserRepository,
	swapRepo repository.SwapRequestRepository,
	skillRepo repository.SkillRepository,
	views invalidation.Invalidator,
) AdminService {
	return &adminService{
		userRepo:  userRepo,
		swapRepo:  swapRepo,
		skillRepo: skillRepo,
		views:     views,
	}
}

// ToggleBan flips the banned flag. No transition guard: banning a banned
// user unbans them.
func (s *adminService) ToggleBan(userID string) error {
	rows, err := s.userRepo.ToggleBan(userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	s.views.Invalidate("/admin", profilePath(userID))
	return nil
}

// Stats returns the current persisted counts, nothing derived.
func (s *adminService) Stats() (*dto.StatsResponse, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	swaps, err := s.swapRepo.Count()
	if err != nil {
		return nil, err
	}
	skills, err := s.skillRepo.Count()
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalUsers:  users,
		TotalSwaps:  swaps,
		TotalSkills: skills,
	}, nil
}

func (s *adminService) ListUsers() ([]dto.AdminUserResponse, error) {
	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return dto.FromModelToAdminUserResponses(users), nil
}
