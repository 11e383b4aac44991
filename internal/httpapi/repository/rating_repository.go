package repository

import (
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.Rating) error
	ListByRatee(rateeID string) ([]models.Rating, error)
	AverageForRatee(rateeID string) (*float64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// ListByRatee retrieves all ratings a user has received, newest first
func (r *ratingRepository) ListByRatee(rateeID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("ratee_id = ?", rateeID).
		Preload("Rater").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// AverageForRatee calculates the mean score over every rating the user has
// received. Returns nil when no ratings exist - that is a different state
// than an average of zero, since scores start at 1.
func (r *ratingRepository) AverageForRatee(rateeID string) (*float64, error) {
	var row struct {
		Average *float64
	}

	err := r.db.Model(&models.Rating{}).
		Select("AVG(score) as average").
		Where("ratee_id = ?", rateeID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return row.Average, nil
}
