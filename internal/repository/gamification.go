package repository

import (
	"context"
	"time"

	"cinesport/internal/model"
)

// GamificationRepository defines data access for badges, challenges,
// leaderboards and rewards.
type GamificationRepository interface {
	ListBadges(ctx context.Context) ([]model.Badge, error)
	ListUserBadges(ctx context.Context, userID string) ([]model.UserBadge, error)

	ListActiveChallenges(ctx context.Context) ([]model.Challenge, error)
	ListWeekChallenges(ctx context.Context, userID string, week time.Time) ([]model.UserChallenge, error)
	AssignChallenges(ctx context.Context, userID string, week time.Time, challengeIDs []int64) error
	// CompleteChallenge marks the user's open assignment done and credits its
	// points, atomically. It returns sql.ErrNoRows when no open assignment exists.
	CompleteChallenge(ctx context.Context, userID string, challengeID int64, week time.Time) (earned, total int, err error)

	Leaderboard(ctx context.Context, q model.LeaderboardQuery) ([]model.LeaderboardEntry, error)
	SaveSnapshot(ctx context.Context, kind string, scopeID int64, entries []model.LeaderboardEntry) error

	ListRewards(ctx context.Context) ([]model.Reward, error)
	FindReward(ctx context.Context, id int64) (*model.Reward, error)
	// Redeem deducts the reward cost and records the redemption, atomically.
	// It returns ErrInsufficientPoints when the balance is too low and
	// sql.ErrNoRows when the user does not exist.
	Redeem(ctx context.Context, userID string, reward *model.Reward) (remaining int, err error)
}
