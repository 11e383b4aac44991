package handler

import (
	"time"

	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/dto"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/service"

	"github.com/stretchr/testify/mock"
)

type MockSwapService struct {
	mock.Mock
}

func (m *MockSwapService) Create(requesterID, requesteeID, message string) (*dto.SwapRequestResponse, error) {
	args := m.Called(requesterID, requesteeID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SwapRequestResponse), args.Error(1)
}

func (m *MockSwapService) Respond(swapID, actorID, newStatus string) error {
	args := m.Called(swapID, actorID, newStatus)
	return args.Error(0)
}

func (m *MockSwapService) Withdraw(swapID, actorID string) error {
	args := m.Called(swapID, actorID)
	return args.Error(0)
}

func (m *MockSwapService) ListIncoming(userID string) ([]dto.SwapRequestResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SwapRequestResponse), args.Error(1)
}

func (m *MockSwapService) ListOutgoing(userID string) ([]dto.SwapRequestResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SwapRequestResponse), args.Error(1)
}

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) SubmitFeedback(raterID, swapID string, score int, comment string) error {
	args := m.Called(raterID, swapID, score, comment)
	return args.Error(0)
}

func (m *MockFeedbackService) ListForUser(userID string) ([]dto.RatingResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RatingResponse), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(name, email, password string) (*models.User, error) {
	args := m.Called(name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(email, password string) (string, string, *models.User, error) {
	args := m.Called(email, password)
	if args.Get(2) == nil {
		return "", "", nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) RevokeToken(refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) AccessTokenTTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}
