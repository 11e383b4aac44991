package repository

import (
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"

	"gorm.io/gorm"
)

// SwapRequestRepository defines the interface for swap request data operations.
// The guarded writes (status change, delete, rated flags) are single
// conditional statements returning the affected-row count, so callers can
// close the read-then-write race window.
type SwapRequestRepository interface {
	Create(swap *models.SwapRequest) error
	FindByID(id string) (*models.SwapRequest, error)
	ListByRequestee(userID string) ([]models.SwapRequest, error)
	ListByRequester(userID string) ([]models.SwapRequest, error)
	UpdateStatusIfPending(id, status string) (int64, error)
	DeleteIfPending(id string) (int64, error)
	MarkRated(id string, byRequester bool) (int64, error)
	Count() (int64, error)
}

type swapRequestRepository struct {
	db *gorm.DB
}

func NewSwapRequestRepository(db *gorm.DB) SwapRequestRepository {
	return &swapRequestRepository{db: db}
}

func (r *swapRequestRepository) Create(swap *models.SwapRequest) error {
	return r.db.Create(swap).Error
}

func (r *swapRequestRepository) FindByID(id string) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.db.First(&swap, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &swap, nil
}

// ListByRequestee returns the inbound requests for a user's dashboard,
// newest first, with the requester profile attached.
func (r *swapRequestRepository) ListByRequestee(userID string) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	err := r.db.Where("requestee_id = ?", userID).
		Preload("Requester").
		Order("created_at DESC").
		Find(&swaps).Error
	if err != nil {
		return nil, err
	}
	return swaps, nil
}

func (r *swapRequestRepository) ListByRequester(userID string) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	err := r.db.Where("requester_id = ?", userID).
		Preload("Requestee").
		Order("created_at DESC").
		Find(&swaps).Error
	if err != nil {
		return nil, err
	}
	return swaps, nil
}

func (r *swapRequestRepository) UpdateStatusIfPending(id, status string) (int64, error) {
	result := r.db.Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", id, models.SwapStatusPending).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *swapRequestRepository) DeleteIfPending(id string) (int64, error) {
	result := r.db.Where("id = ? AND status = ?", id, models.SwapStatusPending).
		Delete(&models.SwapRequest{})
	return result.RowsAffected, result.Error
}

// MarkRated flips the party's hasRated flag only if it is still false.
// Zero affected rows means somebody already rated on this side.
func (r *swapRequestRepository) MarkRated(id string, byRequester bool) (int64, error) {
	column := "requestee_has_rated"
	if byRequester {
		column = "requester_has_rated"
	}
	result := r.db.Model(&models.SwapRequest{}).
		Where("id = ? AND "+column+" = ?", id, false).
		Update(column, true)
	return result.RowsAffected, result.Error
}

func (r *swapRequestRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.SwapRequest{}).Count(&count).Error
	return count, err
}
