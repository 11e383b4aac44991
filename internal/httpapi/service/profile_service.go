package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/dto"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/repository"
	"github.com/Kecyverse/skill-swap-platform/internal/invalidation"

	"gorm.io/gorm"
)

const (
	SkillKindOffered = "offered"
	SkillKindWanted  = "wanted"
)

// ProfileService edits the caller's own profile and skill lists. There is no
// cross-user authorization here: the actor id always comes from the verified
// session and every write is keyed on it.
type ProfileService interface {
	GetOwn(actorID string) (*dto.ProfileResponse, error)
	UpdateProfile(actorID string, req dto.UpdateProfileDTO) (*dto.ProfileResponse, error)
	AddSkill(actorID, name, kind string) (*dto.SkillResponse, error)
	RemoveSkill(actorID, skillID, kind string) error
}

type profileService struct {
	userRepo  repository.UserRepository
	skillRepo repository.SkillRepository
	views     invalidation.Invalidator
}

func NewProfileService(
	userRepo repository.UserRepository,
	skillRepo repository.SkillRepository,
	views invalidation.Invalidator,
) ProfileService {
	return &profileService{
		userRepo:  userRepo,
		skillRepo: skillRepo,
		views:     views,
	}
}

func (s *profileService) GetOwn(actorID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByIDWithSkills(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return dto.FromModelToProfileResponse(user, true), nil
}

// UpdateProfile writes the provided fields onto the actor's own record.
func (s *profileService) UpdateProfile(actorID string, req dto.UpdateProfileDTO) (*dto.ProfileResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Availability != nil {
		fields["availability"] = *req.Availability
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(actorID, fields); err != nil {
			return nil, err
		}
		s.views.Invalidate(profilePath(actorID))
	}

	return s.GetOwn(actorID)
}

// AddSkill attaches a skill to the actor's profile under the given kind.
// The skill itself is created lazily on first use by anyone; names are
// case-insensitive, so "Python" after "python" hits the same skill and the
// duplicate join fails.
func (s *profileService) AddSkill(actorID, name, kind string) (*dto.SkillResponse, error) {
	if kind != SkillKindOffered && kind != SkillKindWanted {
		return nil, ErrInvalidSkillKind
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidSkillKind
	}

	skill, err := s.skillRepo.FindOrCreate(name)
	if err != nil {
		return nil, err
	}

	if kind == SkillKindOffered {
		err = s.skillRepo.AddOffered(actorID, skill.ID)
	} else {
		err = s.skillRepo.AddWanted(actorID, skill.ID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSkillAlreadyAdded
		}
		return nil, err
	}

	s.views.Invalidate(profilePath(actorID))
	return &dto.SkillResponse{ID: skill.ID, Name: skill.Name}, nil
}

// RemoveSkill detaches a skill from the actor's profile. Removing a link
// that is not there touches nothing else and reports not-found.
func (s *profileService) RemoveSkill(actorID, skillID, kind string) error {
	if kind != SkillKindOffered && kind != SkillKindWanted {
		return ErrInvalidSkillKind
	}

	var rows int64
	var err error
	if kind == SkillKindOffered {
		rows, err = s.skillRepo.RemoveOffered(actorID, skillID)
	} else {
		rows, err = s.skillRepo.RemoveWanted(actorID, skillID)
	}
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSkillLinkNotFound
	}

	s.views.Invalidate(profilePath(actorID))
	return nil
}

func profilePath(userID string) string {
	return fmt.Sprintf("/profile/%s", userID)
}
