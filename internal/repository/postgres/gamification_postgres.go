package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cinesport/internal/database"
	"cinesport/internal/model"
	"cinesport/internal/repository"
)

// GamificationPostgres is a PostgreSQL implementation of repository.GamificationRepository.
type GamificationPostgres struct {
	db *sql.DB
}

// NewGamificationPostgres creates a new GamificationPostgres repository.
func NewGamificationPostgres(db *sql.DB) *GamificationPostgres {
	return &GamificationPostgres{db: db}
}

var _ repository.GamificationRepository = (*GamificationPostgres)(nil)

// ListBadges returns the badge catalog ordered by type and name.
func (r *GamificationPostgres) ListBadges(ctx context.Context) ([]model.Badge, error) {
	const q = `SELECT id, name, description, type, icon_url FROM badges ORDER BY type, name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Badge, 0)
	for rows.Next() {
		var b model.Badge
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Type, &b.IconURL); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

// ListUserBadges returns the badges earned by the user, newest first.
func (r *GamificationPostgres) ListUserBadges(ctx context.Context, userID string) ([]model.UserBadge, error) {
	const q = `
		SELECT b.id, b.name, b.description, b.type, b.icon_url, ub.earned_at
		FROM user_badges ub
		JOIN badges b ON b.id = ub.badge_id
		WHERE ub.user_id = $1
		ORDER BY ub.earned_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.UserBadge, 0)
	for rows.Next() {
		var b model.UserBadge
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Type, &b.IconURL, &b.EarnedAt); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

// ListActiveChallenges returns the challenges that can be assigned.
func (r *GamificationPostgres) ListActiveChallenges(ctx context.Context) ([]model.Challenge, error) {
	const q = `SELECT id, name, description, points, active FROM challenges WHERE active ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Challenge, 0)
	for rows.Next() {
		var c model.Challenge
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Points, &c.Active); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// ListWeekChallenges returns the user's assignments for the week starting at week.
func (r *GamificationPostgres) ListWeekChallenges(ctx context.Context, userID string, week time.Time) ([]model.UserChallenge, error) {
	const q = `
		SELECT uc.id, c.id, c.name, c.description, c.points, c.active, uc.week_ref, uc.completed, uc.completed_at
		FROM user_challenges uc
		JOIN challenges c ON c.id = uc.challenge_id
		WHERE uc.user_id = $1 AND uc.week_ref = $2
		ORDER BY uc.id
	`
	rows, err := r.db.QueryContext(ctx, q, userID, week)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.UserChallenge, 0)
	for rows.Next() {
		var (
			uc   model.UserChallenge
			done sql.NullTime
		)
		if err := rows.Scan(
			&uc.ID,
			&uc.Challenge.ID,
			&uc.Challenge.Name,
			&uc.Challenge.Description,
			&uc.Challenge.Points,
			&uc.Challenge.Active,
			&uc.WeekRef,
			&uc.Completed,
			&done,
		); err != nil {
			return nil, err
		}
		uc.CompletedAt = timePtr(done)
		items = append(items, uc)
	}
	return items, rows.Err()
}

// AssignChallenges assigns the given challenges to the user for the week, skipping existing ones.
func (r *GamificationPostgres) AssignChallenges(ctx context.Context, userID string, week time.Time, challengeIDs []int64) error {
	const q = `
		INSERT INTO user_challenges (user_id, challenge_id, week_ref)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, challenge_id, week_ref) DO NOTHING
	`
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, id := range challengeIDs {
			if _, err := tx.ExecContext(ctx, q, userID, id, week); err != nil {
				return err
			}
		}
		return nil
	})
}

// CompleteChallenge closes the user's open assignment for the week and credits its points.
func (r *GamificationPostgres) CompleteChallenge(ctx context.Context, userID string, challengeID int64, week time.Time) (int, int, error) {
	const qComplete = `
		UPDATE user_challenges uc
		SET completed = true, completed_at = now()
		FROM challenges c
		WHERE c.id = uc.challenge_id
		  AND uc.user_id = $1 AND uc.challenge_id = $2 AND uc.week_ref = $3 AND NOT uc.completed
		RETURNING c.points
	`
	const qCredit = `UPDATE users SET points = points + $2, updated_at = now() WHERE id = $1 RETURNING points`

	var earned, total int
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, qComplete, userID, challengeID, week).Scan(&earned); err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, qCredit, userID, earned).Scan(&total)
	})
	if err != nil {
		return 0, 0, err
	}
	return earned, total, nil
}

// Leaderboard ranks users by points for the requested kind.
func (r *GamificationPostgres) Leaderboard(ctx context.Context, q model.LeaderboardQuery) ([]model.LeaderboardEntry, error) {
	var (
		query string
		args  []any
	)
	switch q.Kind {
	case model.LeaderboardWeekly:
		query = `
			SELECT u.id, u.name, u.username, COALESCE(SUM(c.points), 0)::int AS pts
			FROM users u
			JOIN user_challenges uc ON uc.user_id = u.id AND uc.completed AND uc.completed_at >= $1
			JOIN challenges c ON c.id = uc.challenge_id
			GROUP BY u.id
			ORDER BY pts DESC, u.username
			LIMIT $2
		`
		args = []any{q.WeekStart, q.Limit}
	case model.LeaderboardBySport:
		query = `SELECT id, name, username, points FROM users WHERE favorite_sport_id = $1 ORDER BY points DESC, username LIMIT $2`
		args = []any{q.SportID, q.Limit}
	case model.LeaderboardByLocation:
		query = `SELECT id, name, username, points FROM users WHERE location_id = $1 ORDER BY points DESC, username LIMIT $2`
		args = []any{q.LocationID, q.Limit}
	case model.LeaderboardGlobal:
		query = `SELECT id, name, username, points FROM users ORDER BY points DESC, username LIMIT $1`
		args = []any{q.Limit}
	default:
		return nil, fmt.Errorf("unknown leaderboard kind %q", q.Kind)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LeaderboardEntry, 0)
	for rows.Next() {
		e := model.LeaderboardEntry{Position: len(items) + 1}
		if err := rows.Scan(&e.UserID, &e.Name, &e.Username, &e.Points); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// SaveSnapshot stores one leaderboard ranking.
func (r *GamificationPostgres) SaveSnapshot(ctx context.Context, kind string, scopeID int64, entries []model.LeaderboardEntry) error {
	const q = `
		INSERT INTO leaderboard_snapshots (kind, scope_id, position, user_id, points)
		VALUES ($1, $2, $3, $4, $5)
	`
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, e := range entries {
			if _, err := tx.ExecContext(ctx, q, kind, nullIfZero(scopeID), e.Position, e.UserID, e.Points); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListRewards returns the reward catalog ordered by cost.
func (r *GamificationPostgres) ListRewards(ctx context.Context) ([]model.Reward, error) {
	const q = `SELECT id, name, description, cost FROM rewards ORDER BY cost, name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Reward, 0)
	for rows.Next() {
		var rw model.Reward
		if err := rows.Scan(&rw.ID, &rw.Name, &rw.Description, &rw.Cost); err != nil {
			return nil, err
		}
		items = append(items, rw)
	}
	return items, rows.Err()
}

// FindReward fetches a single reward.
func (r *GamificationPostgres) FindReward(ctx context.Context, id int64) (*model.Reward, error) {
	const q = `SELECT id, name, description, cost FROM rewards WHERE id = $1`
	var rw model.Reward
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&rw.ID, &rw.Name, &rw.Description, &rw.Cost); err != nil {
		return nil, err
	}
	return &rw, nil
}

// Redeem deducts the reward cost only when the balance covers it and records the redemption.
func (r *GamificationPostgres) Redeem(ctx context.Context, userID string, reward *model.Reward) (int, error) {
	const qDeduct = `
		UPDATE users
		SET points = points - $2, total_spent = total_spent + $2, updated_at = now()
		WHERE id = $1 AND points >= $2
		RETURNING points
	`
	const qUserExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	const qRecord = `INSERT INTO reward_redemptions (user_id, reward_id, cost) VALUES ($1, $2, $3)`

	var remaining int
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, qDeduct, userID, reward.Cost).Scan(&remaining)
		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			if err := tx.QueryRowContext(ctx, qUserExists, userID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return sql.ErrNoRows
			}
			return repository.ErrInsufficientPoints
		}
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, qRecord, userID, reward.ID, reward.Cost)
		return err
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}
