package repository

import (
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByIDWithSkills(id string) (*models.User, error)
	FindPublicByIDWithSkills(id string) (*models.User, error)
	UpdateFields(id string, fields map[string]interface{}) error
	SetAverageRating(id string, avg *float64) error
	SearchPublic(query, availability string) ([]models.User, error)
	ListAll() ([]models.User, error)
	ToggleBan(id string) (int64, error)
	Count() (int64, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	// return nil on miss so callers never see a zero-value user
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDWithSkills(id string) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("SkillsOffered.Skill").
		Preload("SkillsWanted.Skill").
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindPublicByIDWithSkills only matches public profiles; a private or missing
// user is the same "not found" to the caller.
func (r *userRepository) FindPublicByIDWithSkills(id string) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("SkillsOffered.Skill").
		Preload("SkillsWanted.Skill").
		Where("id = ? AND is_public = ?", id, true).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *userRepository) SetAverageRating(id string, avg *float64) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("average_rating", avg).Error
}

// SearchPublic filters public users by availability substring and by name or
// offered-skill name substring, all case-insensitive, newest first.
func (r *userRepository) SearchPublic(query, availability string) ([]models.User, error) {
	var users []models.User

	q := r.db.Model(&models.User{}).
		Preload("SkillsOffered.Skill").
		Where("is_public = ?", true)

	if availability != "" {
		q = q.Where("availability ILIKE ?", "%"+availability+"%")
	}

	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where(
			"name ILIKE ? OR id IN (?)",
			pattern,
			r.db.Table("user_skills_offered").
				Select("user_skills_offered.user_id").
				Joins("JOIN skills ON skills.id = user_skills_offered.skill_id").
				Where("skills.name ILIKE ?", pattern),
		)
	}

	if err := q.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ListAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ToggleBan flips is_banned in a single statement and reports how many rows
// matched, so the caller can map zero rows to not-found.
func (r *userRepository) ToggleBan(id string) (int64, error) {
	result := r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("is_banned", gorm.Expr("NOT is_banned"))
	return result.RowsAffected, result.Error
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
