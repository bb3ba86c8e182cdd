package model

import "time"

// User is a registered account. PasswordHash and AvatarKey never leave the server.
type User struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	Birthdate       *time.Time `json:"birthdate,omitempty"`
	Location        string     `json:"location"`
	Country         string     `json:"country"`
	Points          int        `json:"points"`
	TotalSpent      int        `json:"total_spent"`
	FavoriteSportID *int64     `json:"favorite_sport_id,omitempty"`
	LocationID      *int64     `json:"location_id,omitempty"`
	AvatarKey       string     `json:"-"`
	SuspendedUntil  *time.Time `json:"suspended_until,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// SuspendedAt reports whether the user is suspended at the given instant.
func (u *User) SuspendedAt(t time.Time) bool {
	return u.SuspendedUntil != nil && u.SuspendedUntil.After(t)
}

// UserSummary is the public, list-friendly view of a user.
type UserSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

// UserProfile is the public profile of a user, without contact details.
type UserProfile struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	Location      string    `json:"location"`
	Country       string    `json:"country"`
	Points        int       `json:"points"`
	FavoriteSport string    `json:"favorite_sport,omitempty"`
	LocationName  string    `json:"location_name,omitempty"`
	HasAvatar     bool      `json:"has_avatar"`
	CreatedAt     time.Time `json:"created_at"`
}

// SportCount is the number of confirmed participations in one sport.
type SportCount struct {
	SportID   int64  `json:"sport_id"`
	SportName string `json:"sport_name"`
	Count     int    `json:"count"`
}

// UserStats aggregates a user's activity in events.
type UserStats struct {
	EventsOrganized    int          `json:"events_organized"`
	EventsParticipated int          `json:"events_participated"`
	EventsCompleted    int          `json:"events_completed"`
	BySport            []SportCount `json:"by_sport"`
	FavoriteSport      *SportCount  `json:"favorite_sport"`
}
