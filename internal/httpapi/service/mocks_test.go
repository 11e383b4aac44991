package service

import (
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDWithSkills(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindPublicByIDWithSkills(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) SetAverageRating(id string, avg *float64) error {
	args := m.Called(id, avg)
	return args.Error(0)
}

func (m *MockUserRepository) SearchPublic(query, availability string) ([]models.User, error) {
	args := m.Called(query, availability)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) ListAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) ToggleBan(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockSwapRequestRepository is a mock implementation of repository.SwapRequestRepository
type MockSwapRequestRepository struct {
	mock.Mock
}

func (m *MockSwapRequestRepository) Create(swap *models.SwapRequest) error {
	args := m.Called(swap)
	return args.Error(0)
}

func (m *MockSwapRequestRepository) FindByID(id string) (*models.SwapRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwapRequest), args.Error(1)
}

func (m *MockSwapRequestRepository) ListByRequestee(userID string) ([]models.SwapRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SwapRequest), args.Error(1)
}

func (m *MockSwapRequestRepository) ListByRequester(userID string) ([]models.SwapRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SwapRequest), args.Error(1)
}

func (m *MockSwapRequestRepository) UpdateStatusIfPending(id, status string) (int64, error) {
	args := m.Called(id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSwapRequestRepository) DeleteIfPending(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSwapRequestRepository) MarkRated(id string, byRequester bool) (int64, error) {
	args := m.Called(id, byRequester)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSwapRequestRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockSkillRepository is a mock implementation of repository.SkillRepository
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) FindByNameInsensitive(name string) (*models.Skill, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) FindOrCreate(name string) (*models.Skill, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) AddOffered(userID, skillID string) error {
	args := m.Called(userID, skillID)
	return args.Error(0)
}

func (m *MockSkillRepository) AddWanted(userID, skillID string) error {
	args := m.Called(userID, skillID)
	return args.Error(0)
}

func (m *MockSkillRepository) RemoveOffered(userID, skillID string) (int64, error) {
	args := m.Called(userID, skillID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSkillRepository) RemoveWanted(userID, skillID string) (int64, error) {
	args := m.Called(userID, skillID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSkillRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockRatingRepository is a mock implementation of repository.RatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *MockRatingRepository) ListByRatee(rateeID string) ([]models.Rating, error) {
	args := m.Called(rateeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) AverageForRatee(rateeID string) (*float64, error) {
	args := m.Called(rateeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

// MockRefreshTokenRepository is a mock implementation of repository.RefreshTokenRepository
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired() error {
	args := m.Called()
	return args.Error(0)
}

// passthroughTx runs the callback directly against the given repos. A
// returned error stands in for a rollback.
type passthroughTx struct {
	repos repository.Repos
}

func (t *passthroughTx) RunInTx(fn func(repos repository.Repos) error) error {
	return fn(t.repos)
}
