package service

import (
	"testing"

	"github.com/Kecyverse/skill-swap-platform/internal/invalidation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_ToggleBan(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ToggleBan", "ghost").Return(int64(0), nil)
		svc := NewAdminService(userRepo, new(MockSwapRequestRepository), new(MockSkillRepository), invalidation.Noop{})

		assert.ErrorIs(t, svc.ToggleBan("ghost"), ErrUserNotFound)
	})

	t.Run("flips the flag", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("ToggleBan", "user-1").Return(int64(1), nil)
		svc := NewAdminService(userRepo, new(MockSwapRequestRepository), new(MockSkillRepository), invalidation.Noop{})

		require.NoError(t, svc.ToggleBan("user-1"))
		userRepo.AssertExpectations(t)
	})
}

func TestAdminService_Stats(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("Count").Return(int64(42), nil)
	swapRepo := new(MockSwapRequestRepository)
	swapRepo.On("Count").Return(int64(17), nil)
	skillRepo := new(MockSkillRepository)
	skillRepo.On("Count").Return(int64(14), nil)

	svc := NewAdminService(userRepo, swapRepo, skillRepo, invalidation.Noop{})

	stats, err := svc.Stats()

	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, int64(17), stats.TotalSwaps)
	assert.Equal(t, int64(14), stats.TotalSkills)
}
