package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"cinesport/internal/model"
	"cinesport/internal/repository"
	repoMocks "cinesport/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Wednesday; the week starts on Sunday 2026-10-18.
var (
	gameNow  = time.Date(2026, 10, 21, 9, 0, 0, 0, time.UTC)
	gameWeek = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
)

func newGamificationService(repo *repoMocks.MockGamificationRepository, sports *repoMocks.MockSportRepository, locs *repoMocks.MockLocationRepository) *gamificationService {
	svc := NewGamificationService(repo, sports, locs, discardLogger()).(*gamificationService)
	svc.now = func() time.Time { return gameNow }
	svc.shuffle = func(int, func(i, j int)) {}
	return svc
}

func TestGamificationService_UserBadges(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockGamificationRepository)
	repo.On("ListBadges", ctx).Return([]model.Badge{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	repo.On("ListUserBadges", ctx, "u-1").Return([]model.UserBadge{{Badge: model.Badge{ID: 2}}}, nil)

	res, err := newGamificationService(repo, nil, nil).UserBadges(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, res.Earned, 1)
	assert.Equal(t, []model.Badge{{ID: 1}, {ID: 3}}, res.Available)
}

func TestGamificationService_WeekChallenges(t *testing.T) {
	ctx := context.Background()

	t.Run("existing assignments are returned", func(t *testing.T) {
		repo := new(repoMocks.MockGamificationRepository)
		repo.On("ListWeekChallenges", ctx, "u-1", gameWeek).Return([]model.UserChallenge{{ID: 1}}, nil).Once()

		got, err := newGamificationService(repo, nil, nil).WeekChallenges(ctx, "u-1")
		require.NoError(t, err)
		assert.Len(t, got, 1)
		repo.AssertNotCalled(t, "AssignChallenges", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("assigns three distinct challenges on first access", func(t *testing.T) {
		repo := new(repoMocks.MockGamificationRepository)
		repo.On("ListWeekChallenges", ctx, "u-1", gameWeek).Return([]model.UserChallenge{}, nil).Once()
		repo.On("ListActiveChallenges", ctx).Return([]model.Challenge{{ID: 4}, {ID: 5}, {ID: 6}, {ID: 7}}, nil)
		repo.On("AssignChallenges", ctx, "u-1", gameWeek, []int64{4, 5, 6}).Return(nil)
		repo.On("ListWeekChallenges", ctx, "u-1", gameWeek).Return([]model.UserChallenge{{ID: 1}, {ID: 2}, {ID: 3}}, nil).Once()

		got, err := newGamificationService(repo, nil, nil).WeekChallenges(ctx, "u-1")
		require.NoError(t, err)
		assert.Len(t, got, 3)
		repo.AssertExpectations(t)
	})

	t.Run("fewer active challenges than slots", func(t *testing.T) {
		repo := new(repoMocks.MockGamificationRepository)
		repo.On("ListWeekChallenges", ctx, "u-1", gameWeek).Return(nil, nil).Once()
		repo.On("ListActiveChallenges", ctx).Return([]model.Challenge{{ID: 9}}, nil)
		repo.On("AssignChallenges", ctx, "u-1", gameWeek, []int64{9}).Return(nil)
		repo.On("ListWeekChallenges", ctx, "u-1", gameWeek).Return([]model.UserChallenge{{ID: 1}}, nil).Once()

		got, err := newGamificationService(repo, nil, nil).WeekChallenges(ctx, "u-1")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("no active challenges", func(t *testing.T) {
		repo := new(repoMocks.MockGamificationRepository)
		repo.On("ListWeekChallenges", ctx, "u-1", gameWeek).Return(nil, nil)
		repo.On("ListActiveChallenges", ctx).Return(nil, nil)

		got, err := newGamificationService(repo, nil, nil).WeekChallenges(ctx, "u-1")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestGamificationService_CompleteChallenge(t *testing.T) {
	ctx := context.Background()

	repo := new(repoMocks.MockGamificationRepository)
	repo.On("CompleteChallenge", ctx, "u-1", int64(4), gameWeek).Return(40, 140, nil)
	repo.On("CompleteChallenge", ctx, "u-1", int64(5), gameWeek).Return(0, 0, sql.ErrNoRows)
	svc := newGamificationService(repo, nil, nil)

	res, err := svc.CompleteChallenge(ctx, "u-1", 4)
	require.NoError(t, err)
	assert.Equal(t, &ChallengeResult{Earned: 40, Total: 140}, res)

	_, err = svc.CompleteChallenge(ctx, "u-1", 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGamificationService_Leaderboard(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		kind    string
		scope   int64
		limit   int
		wantQ   *model.LeaderboardQuery
		wantErr error
	}{
		{name: "default global", wantQ: &model.LeaderboardQuery{Kind: model.LeaderboardGlobal, Limit: 10}},
		{name: "weekly", kind: "weekly", limit: 5, wantQ: &model.LeaderboardQuery{Kind: model.LeaderboardWeekly, WeekStart: gameWeek, Limit: 5}},
		{name: "by sport", kind: "by_sport", scope: 2, wantQ: &model.LeaderboardQuery{Kind: model.LeaderboardBySport, SportID: 2, Limit: 10}},
		{name: "by location", kind: "by_location", scope: 3, limit: 500, wantQ: &model.LeaderboardQuery{Kind: model.LeaderboardByLocation, LocationID: 3, Limit: 100}},
		{name: "by sport without id", kind: "by_sport", wantErr: ErrInvalidInput},
		{name: "unknown kind", kind: "season", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockGamificationRepository)
			if tt.wantQ != nil {
				repo.On("Leaderboard", ctx, *tt.wantQ).Return([]model.LeaderboardEntry{{Position: 1}}, nil)
			}

			got, err := newGamificationService(repo, nil, nil).Leaderboard(ctx, tt.kind, tt.scope, tt.limit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, 1)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestGamificationService_Redeem(t *testing.T) {
	ctx := context.Background()
	reward := &model.Reward{ID: 1, Cost: 300}

	tests := []struct {
		name       string
		setupMocks func(repo *repoMocks.MockGamificationRepository)
		want       int
		wantErr    error
	}{
		{
			name: "deducts",
			setupMocks: func(repo *repoMocks.MockGamificationRepository) {
				repo.On("FindReward", ctx, int64(1)).Return(reward, nil)
				repo.On("Redeem", ctx, "u-1", reward).Return(200, nil)
			},
			want: 200,
		},
		{
			name: "insufficient points",
			setupMocks: func(repo *repoMocks.MockGamificationRepository) {
				repo.On("FindReward", ctx, int64(1)).Return(reward, nil)
				repo.On("Redeem", ctx, "u-1", reward).Return(0, repository.ErrInsufficientPoints)
			},
			wantErr: ErrInsufficientPoints,
		},
		{
			name: "unknown reward",
			setupMocks: func(repo *repoMocks.MockGamificationRepository) {
				repo.On("FindReward", ctx, int64(1)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "unknown user",
			setupMocks: func(repo *repoMocks.MockGamificationRepository) {
				repo.On("FindReward", ctx, int64(1)).Return(reward, nil)
				repo.On("Redeem", ctx, "u-1", reward).Return(0, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockGamificationRepository)
			tt.setupMocks(repo)

			got, err := newGamificationService(repo, nil, nil).Redeem(ctx, "u-1", 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestGamificationService_SnapshotLeaderboards(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockGamificationRepository)
	sports := new(repoMocks.MockSportRepository)
	locs := new(repoMocks.MockLocationRepository)
	entries := []model.LeaderboardEntry{{Position: 1, UserID: "u-1", Points: 90}}

	sports.On("List", ctx).Return([]model.Sport{{ID: 1}}, nil)
	locs.On("List", ctx).Return([]model.Location{{ID: 7}}, nil)
	repo.On("Leaderboard", ctx, model.LeaderboardQuery{Kind: model.LeaderboardGlobal, Limit: snapshotLimit}).Return(entries, nil)
	repo.On("Leaderboard", ctx, model.LeaderboardQuery{Kind: model.LeaderboardBySport, SportID: 1, Limit: snapshotLimit}).Return([]model.LeaderboardEntry{}, nil)
	repo.On("Leaderboard", ctx, model.LeaderboardQuery{Kind: model.LeaderboardByLocation, LocationID: 7, Limit: snapshotLimit}).Return(entries, nil)
	repo.On("SaveSnapshot", ctx, model.LeaderboardGlobal, int64(0), entries).Return(nil)
	repo.On("SaveSnapshot", ctx, model.LeaderboardByLocation, int64(7), entries).Return(nil)

	n, err := newGamificationService(repo, sports, locs).SnapshotLeaderboards(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	repo.AssertExpectations(t)

	failing := new(repoMocks.MockSportRepository)
	failing.On("List", ctx).Return(nil, errors.New("db fail"))
	_, err = newGamificationService(repo, failing, locs).SnapshotLeaderboards(ctx)
	assert.EqualError(t, err, "list sports: db fail")
}
