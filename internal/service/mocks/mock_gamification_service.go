package mocks

import (
	"context"
	"io"

	"cinesport/internal/model"
	"cinesport/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockGamificationService struct {
	mock.Mock
}

func (m *MockGamificationService) Badges(ctx context.Context) ([]model.Badge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Badge), args.Error(1)
}

func (m *MockGamificationService) UserBadges(ctx context.Context, userID string) (*service.UserBadges, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserBadges), args.Error(1)
}

func (m *MockGamificationService) WeekChallenges(ctx context.Context, userID string) ([]model.UserChallenge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserChallenge), args.Error(1)
}

func (m *MockGamificationService) CompleteChallenge(ctx context.Context, userID string, challengeID int64) (*service.ChallengeResult, error) {
	args := m.Called(ctx, userID, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChallengeResult), args.Error(1)
}

func (m *MockGamificationService) Leaderboard(ctx context.Context, kind string, scopeID int64, limit int) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx, kind, scopeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeaderboardEntry), args.Error(1)
}

func (m *MockGamificationService) Rewards(ctx context.Context) ([]model.Reward, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reward), args.Error(1)
}

func (m *MockGamificationService) Redeem(ctx context.Context, userID string, rewardID int64) (int, error) {
	args := m.Called(ctx, userID, rewardID)
	return args.Int(0), args.Error(1)
}

func (m *MockGamificationService) SnapshotLeaderboards(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Sports(ctx context.Context) ([]model.Sport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sport), args.Error(1)
}

func (m *MockCatalogService) CreateSport(ctx context.Context, in model.Sport) (*model.Sport, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sport), args.Error(1)
}

func (m *MockCatalogService) UpdateSport(ctx context.Context, id int64, in model.Sport) (*model.Sport, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sport), args.Error(1)
}

func (m *MockCatalogService) DeleteSport(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) UploadSportPhoto(ctx context.Context, id int64, r io.Reader, contentType string, size int64) (*model.Sport, error) {
	args := m.Called(ctx, id, r, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sport), args.Error(1)
}

func (m *MockCatalogService) SportPhotoURL(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogService) Locations(ctx context.Context) ([]model.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Location), args.Error(1)
}

func (m *MockCatalogService) CreateLocation(ctx context.Context, name string) (*model.Location, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockCatalogService) UpdateLocation(ctx context.Context, id int64, name string) (*model.Location, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockCatalogService) DeleteLocation(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
