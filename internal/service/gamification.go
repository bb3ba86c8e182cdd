package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"cinesport/internal/model"
	"cinesport/internal/repository"
)

const (
	// ChallengesPerWeek is the number of challenges assigned to a user each week.
	ChallengesPerWeek = 3
	leaderboardLimit  = 10
	snapshotLimit     = 100
)

// UserBadges splits the badge catalog into earned and not yet earned badges.
type UserBadges struct {
	Earned    []model.UserBadge `json:"earned"`
	Available []model.Badge     `json:"available"`
}

// ChallengeResult is the outcome of completing a challenge.
type ChallengeResult struct {
	Earned int `json:"points_earned"`
	Total  int `json:"total_points"`
}

// GamificationService defines badges, weekly challenges, leaderboards and rewards.
type GamificationService interface {
	Badges(ctx context.Context) ([]model.Badge, error)
	UserBadges(ctx context.Context, userID string) (*UserBadges, error)
	// WeekChallenges returns the user's challenges of the current week, assigning them on first access.
	WeekChallenges(ctx context.Context, userID string) ([]model.UserChallenge, error)
	CompleteChallenge(ctx context.Context, userID string, challengeID int64) (*ChallengeResult, error)
	Leaderboard(ctx context.Context, kind string, scopeID int64, limit int) ([]model.LeaderboardEntry, error)
	Rewards(ctx context.Context) ([]model.Reward, error)
	// Redeem purchases a reward and returns the remaining points.
	Redeem(ctx context.Context, userID string, rewardID int64) (int, error)
	// SnapshotLeaderboards stores the current global, per sport and per location rankings.
	SnapshotLeaderboards(ctx context.Context) (int, error)
}

type gamificationService struct {
	repo      repository.GamificationRepository
	sports    repository.SportRepository
	locations repository.LocationRepository
	log       logrus.FieldLogger
	now       func() time.Time
	shuffle   func(n int, swap func(i, j int))
}

// NewGamificationService constructs a new GamificationService.
func NewGamificationService(repo repository.GamificationRepository, sports repository.SportRepository, locations repository.LocationRepository, log logrus.FieldLogger) GamificationService {
	return &gamificationService{
		repo:      repo,
		sports:    sports,
		locations: locations,
		log:       log.WithField("component", "gamification"),
		now:       time.Now,
		shuffle:   rand.Shuffle,
	}
}

func (s *gamificationService) Badges(ctx context.Context) ([]model.Badge, error) {
	return s.repo.ListBadges(ctx)
}

func (s *gamificationService) UserBadges(ctx context.Context, userID string) (*UserBadges, error) {
	all, err := s.repo.ListBadges(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := s.repo.ListUserBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	have := make(map[int64]bool, len(earned))
	for _, b := range earned {
		have[b.ID] = true
	}
	out := &UserBadges{Earned: earned, Available: []model.Badge{}}
	if out.Earned == nil {
		out.Earned = []model.UserBadge{}
	}
	for _, b := range all {
		if !have[b.ID] {
			out.Available = append(out.Available, b)
		}
	}
	return out, nil
}

func (s *gamificationService) WeekChallenges(ctx context.Context, userID string) ([]model.UserChallenge, error) {
	week := model.WeekStart(s.now())
	current, err := s.repo.ListWeekChallenges(ctx, userID, week)
	if err != nil {
		return nil, err
	}
	if len(current) > 0 {
		return current, nil
	}

	active, err := s.repo.ListActiveChallenges(ctx)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return []model.UserChallenge{}, nil
	}
	s.shuffle(len(active), func(i, j int) { active[i], active[j] = active[j], active[i] })
	n := min(ChallengesPerWeek, len(active))
	ids := make([]int64, 0, n)
	for _, c := range active[:n] {
		ids = append(ids, c.ID)
	}
	if err := s.repo.AssignChallenges(ctx, userID, week, ids); err != nil {
		return nil, fmt.Errorf("assign challenges: %w", err)
	}
	return s.repo.ListWeekChallenges(ctx, userID, week)
}

func (s *gamificationService) CompleteChallenge(ctx context.Context, userID string, challengeID int64) (*ChallengeResult, error) {
	if challengeID <= 0 {
		return nil, invalid("invalid challenge id")
	}
	earned, total, err := s.repo.CompleteChallenge(ctx, userID, challengeID, model.WeekStart(s.now()))
	if err != nil {
		return nil, missing(err, "no open challenge found for this week")
	}
	return &ChallengeResult{Earned: earned, Total: total}, nil
}

func (s *gamificationService) Leaderboard(ctx context.Context, kind string, scopeID int64, limit int) ([]model.LeaderboardEntry, error) {
	if kind == "" {
		kind = model.LeaderboardGlobal
	}
	if limit <= 0 {
		limit = leaderboardLimit
	}
	limit = min(limit, maxLimit)

	q := model.LeaderboardQuery{Kind: kind, Limit: limit}
	switch kind {
	case model.LeaderboardGlobal:
	case model.LeaderboardWeekly:
		q.WeekStart = model.WeekStart(s.now())
	case model.LeaderboardBySport:
		if scopeID <= 0 {
			return nil, invalid("sport_id is required")
		}
		q.SportID = scopeID
	case model.LeaderboardByLocation:
		if scopeID <= 0 {
			return nil, invalid("location_id is required")
		}
		q.LocationID = scopeID
	default:
		return nil, invalid("leaderboard type must be global, weekly, by_sport or by_location")
	}

	out, err := s.repo.Leaderboard(ctx, q)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.LeaderboardEntry{}
	}
	return out, nil
}

func (s *gamificationService) Rewards(ctx context.Context) ([]model.Reward, error) {
	return s.repo.ListRewards(ctx)
}

func (s *gamificationService) Redeem(ctx context.Context, userID string, rewardID int64) (int, error) {
	reward, err := s.repo.FindReward(ctx, rewardID)
	if err != nil {
		return 0, missing(err, "reward not found")
	}
	remaining, err := s.repo.Redeem(ctx, userID, reward)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientPoints):
			return 0, errInsufficientPoints
		case errors.Is(err, sql.ErrNoRows):
			return 0, notFound("user not found")
		}
		return 0, err
	}
	return remaining, nil
}

func (s *gamificationService) SnapshotLeaderboards(ctx context.Context) (int, error) {
	type scope struct {
		q  model.LeaderboardQuery
		id int64
	}
	scopes := []scope{{q: model.LeaderboardQuery{Kind: model.LeaderboardGlobal, Limit: snapshotLimit}}}

	sports, err := s.sports.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list sports: %w", err)
	}
	for _, sp := range sports {
		scopes = append(scopes, scope{q: model.LeaderboardQuery{Kind: model.LeaderboardBySport, SportID: sp.ID, Limit: snapshotLimit}, id: sp.ID})
	}
	locations, err := s.locations.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list locations: %w", err)
	}
	for _, l := range locations {
		scopes = append(scopes, scope{q: model.LeaderboardQuery{Kind: model.LeaderboardByLocation, LocationID: l.ID, Limit: snapshotLimit}, id: l.ID})
	}

	saved := 0
	for _, sc := range scopes {
		entries, err := s.repo.Leaderboard(ctx, sc.q)
		if err != nil {
			return saved, fmt.Errorf("leaderboard %s: %w", sc.q.Kind, err)
		}
		if len(entries) == 0 {
			continue
		}
		if err := s.repo.SaveSnapshot(ctx, sc.q.Kind, sc.id, entries); err != nil {
			return saved, fmt.Errorf("save snapshot %s: %w", sc.q.Kind, err)
		}
		saved++
	}
	s.log.WithFields(logrus.Fields{"event": "leaderboard_snapshot", "scopes": saved}).Info("leaderboards saved")
	return saved, nil
}
