package repository

import (
	"errors"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"

	"gorm.io/gorm"
)

// SkillRepository owns the skill catalogue and the user<->skill join rows.
type SkillRepository interface {
	FindByNameInsensitive(name string) (*models.Skill, error)
	FindOrCreate(name string) (*models.Skill, error)
	AddOffered(userID, skillID string) error
	AddWanted(userID, skillID string) error
	RemoveOffered(userID, skillID string) (int64, error)
	RemoveWanted(userID, skillID string) (int64, error)
	Count() (int64, error)
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) FindByNameInsensitive(name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("name ILIKE ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// FindOrCreate looks the skill up case-insensitively and creates it lazily on
// first use. When two callers race on a brand-new name, the loser of the
// unique-index insert retries the lookup instead of erroring.
func (r *skillRepository) FindOrCreate(name string) (*models.Skill, error) {
	skill, err := r.FindByNameInsensitive(name)
	if err == nil {
		return skill, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newSkill := &models.Skill{Name: name}
	if err := r.db.Create(newSkill).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.FindByNameInsensitive(name)
		}
		return nil, err
	}
	return newSkill, nil
}

func (r *skillRepository) AddOffered(userID, skillID string) error {
	return r.db.Create(&models.UserSkillOffered{UserID: userID, SkillID: skillID}).Error
}

func (r *skillRepository) AddWanted(userID, skillID string) error {
	return r.db.Create(&models.UserSkillWanted{UserID: userID, SkillID: skillID}).Error
}

func (r *skillRepository) RemoveOffered(userID, skillID string) (int64, error) {
	result := r.db.Where("user_id = ? AND skill_id = ?", userID, skillID).Delete(&models.UserSkillOffered{})
	return result.RowsAffected, result.Error
}

func (r *skillRepository) RemoveWanted(userID, skillID string) (int64, error) {
	result := r.db.Where("user_id = ? AND skill_id = ?", userID, skillID).Delete(&models.UserSkillWanted{})
	return result.RowsAffected, result.Error
}

func (r *skillRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).Count(&count).Error
	return count, err
}
