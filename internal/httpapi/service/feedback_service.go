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

// FeedbackService creates ratings for accepted swaps and keeps the ratee's
// average up to date. The whole write path runs in one transaction: rating
// insert, hasRated flip and average recompute commit together or roll back
// together - a rating without an updated average cannot exist.
type FeedbackService interface {
	SubmitFeedback(raterID, swapID string, score int, comment string) error
	ListForUser(userID string) ([]dto.RatingResponse, error)
}

type feedbackService struct {
	tx         repository.TxManager
	ratingRepo repository.RatingRepository
	views      invalidation.Invalidator
}

func NewFeedbackService(
	tx repository.TxManager,
	ratingRepo repository.RatingRepository,
	views invalidation.Invalidator,
) FeedbackService {
	return &feedbackService{
		tx:         tx,
		ratingRepo: ratingRepo,
		views:      views,
	}
}

// SubmitFeedback records the rater's score for the other party of an
// accepted swap. Each party rates at most once per swap.
func (s *feedbackService) SubmitFeedback(raterID, swapID string, score int, comment string) error {
	// validated before anything touches the database
	if score < 1 || score > 5 {
		return ErrInvalidScore
	}

	var rateeID string

	err := s.tx.RunInTx(func(repos repository.Repos) error {
		swap, err := repos.Swaps.FindByID(swapID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSwapNotFound
			}
			return err
		}

		if swap.Status != models.SwapStatusAccepted {
			return ErrSwapNotAccepted
		}

		isRequester := raterID == swap.RequesterID
		if !isRequester && raterID != swap.RequesteeID {
			return ErrNotYourSwap
		}

		if isRequester {
			rateeID = swap.RequesteeID
			if swap.RequesterHasRated {
				return ErrAlreadyRated
			}
		} else {
			rateeID = swap.RequesterID
			if swap.RequesteeHasRated {
				return ErrAlreadyRated
			}
		}

		rating := &models.Rating{
			Score:         score,
			Comment:       comment,
			RaterID:       raterID,
			RateeID:       rateeID,
			SwapRequestID: swap.ID,
		}
		if err := repos.Ratings.Create(rating); err != nil {
			return err
		}

		// The flag flip is conditional on the flag still being false, so two
		// concurrent submissions by the same rater cannot both get through:
		// the second one sees zero affected rows and the insert above rolls
		// back with it.
		rows, err := repos.Swaps.MarkRated(swap.ID, isRequester)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrAlreadyRated
		}

		// recompute over all ratings, including the one just inserted
		avg, err := repos.Ratings.AverageForRatee(rateeID)
		if err != nil {
			return err
		}
		return repos.Users.SetAverageRating(rateeID, avg)
	})
	if err != nil {
		return err
	}

	s.views.Invalidate(fmt.Sprintf("/profile/%s", rateeID), dashboardPath(raterID))
	return nil
}

// ListForUser retrieves the ratings a user has received, for the public profile page
func (s *feedbackService) ListForUser(userID string) ([]dto.RatingResponse, error) {
	ratings, err := s.ratingRepo.ListByRatee(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		responses = append(responses, *dto.FromModelToRatingResponse(&ratings[i]))
	}
	return responses, nil
}
