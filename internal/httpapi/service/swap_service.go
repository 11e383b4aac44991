package service

import (
	"errors"
	"fmt"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/dto"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/repository"
	"github.com/Kecyverse/skill-swap-platform/internal/invalidation"

	"gorm.io/gorm"
)

// SwapService owns the swap request lifecycle. The state machine is
// asymmetric on purpose: only the requestee can accept or reject, only the
// requester can withdraw, and both actions require the request to still be
// PENDING. Ownership is always re-checked against the stored record, never
// taken from the caller.
type SwapService interface {
	Create(requesterID, requesteeID, message string) (*dto.SwapRequestResponse, error)
	Respond(swapID, actorID, newStatus string) error
	Withdraw(swapID, actorID string) error
	ListIncoming(userID string) ([]dto.SwapRequestResponse, error)
	ListOutgoing(userID string) ([]dto.SwapRequestResponse, error)
}

type swapService struct {
	swapRepo repository.SwapRequestRepository
	userRepo repository.UserRepository
	views    invalidation.Invalidator
}

func NewSwapService(
	swapRepo repository.SwapRequestRepository,
	userRepo repository.UserRepository,
	views invalidation.Invalidator,
) SwapService {
	return &swapService{
		swapRepo: swapRepo,
		userRepo: userRepo,
		views:    views,
	}
}

// Create inserts a new PENDING request from requester to requestee.
func (s *swapService) Create(requesterID, requesteeID, message string) (*dto.SwapRequestResponse, error) {
	if requesterID == requesteeID {
		return nil, ErrSelfSwap
	}

	// The requestee must exist; a dangling id would otherwise surface later
	// as a broken dashboard entry
	if _, err := s.userRepo.FindByID(requesteeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	swap := &models.SwapRequest{
		RequesterID: requesterID,
		RequesteeID: requesteeID,
		Message:     message,
		Status:      models.SwapStatusPending,
	}
	if err := s.swapRepo.Create(swap); err != nil {
		return nil, err
	}

	// the requestee's inbound list just changed
	s.views.Invalidate(dashboardPath(requesteeID))

	return dto.FromModelToSwapResponse(swap), nil
}

// Respond applies ACCEPTED or REJECTED on behalf of the requestee.
func (s *swapService) Respond(swapID, actorID, newStatus string) error {
	if newStatus != models.SwapStatusAccepted && newStatus != models.SwapStatusRejected {
		return ErrSwapNotPending
	}

	swap, err := s.swapRepo.FindByID(swapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSwapNotFound
		}
		return err
	}

	if swap.RequesteeID != actorID {
		return ErrNotYourSwap
	}
	if swap.Status != models.SwapStatusPending {
		return ErrSwapNotPending
	}

	// The read above only classifies failures; the write itself re-checks the
	// status so a concurrent response cannot slip through between the two.
	rows, err := s.swapRepo.UpdateStatusIfPending(swapID, newStatus)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSwapNotPending
	}

	s.views.Invalidate(dashboardPath(swap.RequesterID), dashboardPath(swap.RequesteeID))
	return nil
}

// Withdraw permanently removes a still-pending request on behalf of the
// requester. Ratings cannot exist yet (they require ACCEPTED), so this
// deletes exactly one row.
func (s *swapService) Withdraw(swapID, actorID string) error {
	swap, err := s.swapRepo.FindByID(swapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSwapNotFound
		}
		return err
	}

	if swap.RequesterID != actorID {
		return ErrNotYourSwap
	}
	if swap.Status != models.SwapStatusPending {
		return ErrSwapNotPending
	}

	rows, err := s.swapRepo.DeleteIfPending(swapID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSwapNotPending
	}

	s.views.Invalidate(dashboardPath(swap.RequesterID), dashboardPath(swap.RequesteeID))
	return nil
}

// ListIncoming returns the requests other users sent to this user
func (s *swapService) ListIncoming(userID string) ([]dto.SwapRequestResponse, error) {
	swaps, err := s.swapRepo.ListByRequestee(userID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToSwapResponses(swaps), nil
}

// ListOutgoing returns the requests this user sent to others
func (s *swapService) ListOutgoing(userID string) ([]dto.SwapRequestResponse, error) {
	swaps, err := s.swapRepo.ListByRequester(userID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToSwapResponses(swaps), nil
}

func dashboardPath(userID string) string {
	return fmt.Sprintf("/dashboard/%s", userID)
}
