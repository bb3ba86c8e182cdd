package mocks

import (
	"context"
	"time"

	"cinesport/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockGamificationRepository struct {
	mock.Mock
}

func (m *MockGamificationRepository) ListBadges(ctx context.Context) ([]model.Badge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Badge), args.Error(1)
}

func (m *MockGamificationRepository) ListUserBadges(ctx context.Context, userID string) ([]model.UserBadge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserBadge), args.Error(1)
}

func (m *MockGamificationRepository) ListActiveChallenges(ctx context.Context) ([]model.Challenge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Challenge), args.Error(1)
}

func (m *MockGamificationRepository) ListWeekChallenges(ctx context.Context, userID string, week time.Time) ([]model.UserChallenge, error) {
	args := m.Called(ctx, userID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserChallenge), args.Error(1)
}

func (m *MockGamificationRepository) AssignChallenges(ctx context.Context, userID string, week time.Time, challengeIDs []int64) error {
	args := m.Called(ctx, userID, week, challengeIDs)
	return args.Error(0)
}

func (m *MockGamificationRepository) CompleteChallenge(ctx context.Context, userID string, challengeID int64, week time.Time) (int, int, error) {
	args := m.Called(ctx, userID, challengeID, week)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockGamificationRepository) Leaderboard(ctx context.Context, q model.LeaderboardQuery) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeaderboardEntry), args.Error(1)
}

func (m *MockGamificationRepository) SaveSnapshot(ctx context.Context, kind string, scopeID int64, entries []model.LeaderboardEntry) error {
	args := m.Called(ctx, kind, scopeID, entries)
	return args.Error(0)
}

func (m *MockGamificationRepository) ListRewards(ctx context.Context) ([]model.Reward, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reward), args.Error(1)
}

func (m *MockGamificationRepository) FindReward(ctx context.Context, id int64) (*model.Reward, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reward), args.Error(1)
}

func (m *MockGamificationRepository) Redeem(ctx context.Context, userID string, reward *model.Reward) (int, error) {
	args := m.Called(ctx, userID, reward)
	return args.Int(0), args.Error(1)
}
