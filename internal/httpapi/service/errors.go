package service

import "errors"

// Sentinel errors shared by the services. Each one marks the exact
// precondition that failed; nothing is written once one is returned
// (the feedback transaction rolls back as a whole).
var (
	// swap lifecycle
	ErrSelfSwap       = errors.New("cannot request a swap with yourself")
	ErrSwapNotFound   = errors.New("swap request not found")
	ErrNotYourSwap    = errors.New("you do not have permission to act on this swap request")
	ErrSwapNotPending = errors.New("swap request is no longer pending")

	// feedback
	ErrSwapNotAccepted = errors.New("feedback is only allowed on accepted swaps")
	ErrAlreadyRated    = errors.New("you have already rated this swap")
	ErrInvalidScore    = errors.New("score must be an integer between 1 and 5")

	// profiles and skills
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidSkillKind  = errors.New("skill kind must be offered or wanted")
	ErrSkillAlreadyAdded = errors.New("skill is already on your profile")
	ErrSkillLinkNotFound = errors.New("skill is not on your profile")
)
