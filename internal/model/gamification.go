package model

import "time"

// Leaderboard kinds.
const (
	LeaderboardGlobal     = "global"
	LeaderboardWeekly     = "weekly"
	LeaderboardBySport    = "by_sport"
	LeaderboardByLocation = "by_location"
)

type Badge struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	IconURL     string `json:"icon_url"`
}

type UserBadge struct {
	Badge
	EarnedAt time.Time `json:"earned_at"`
}

type Challenge struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Active      bool   `json:"active"`
}

// UserChallenge is a challenge assigned to a user for one week.
type UserChallenge struct {
	ID          int64      `json:"id"`
	Challenge   Challenge  `json:"challenge"`
	WeekRef     time.Time  `json:"week_ref"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type LeaderboardQuery struct {
	Kind       string
	SportID    int64
	LocationID int64
	WeekStart  time.Time
	Limit      int
}

type LeaderboardEntry struct {
	Position int    `json:"position"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

type Reward struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
}
