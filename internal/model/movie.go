package model

import "time"

// Reaction types.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Genre is a TMDB movie genre.
type Genre struct {
	ID     int64  `json:"id"`
	TMDBID int64  `json:"tmdb_id"`
	Name   string `json:"name"`
}

// Movie is a locally stored copy of a TMDB movie.
type Movie struct {
	ID           int64      `json:"id"`
	TMDBID       int64      `json:"tmdb_id"`
	Title        string     `json:"title"`
	Overview     string     `json:"overview"`
	ReleaseDate  *time.Time `json:"release_date,omitempty"`
	PosterPath   string     `json:"poster_path"`
	BackdropPath string     `json:"backdrop_path"`
	VoteAverage  *float64   `json:"vote_average,omitempty"`
	Genres       []string   `json:"genres"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Complete reports whether every display field of the movie is present.
func (m *Movie) Complete() bool {
	return m.Title != "" && m.Overview != "" && m.ReleaseDate != nil &&
		m.PosterPath != "" && m.BackdropPath != "" && m.VoteAverage != nil
}

// Favorite is a movie marked as favorite by a user.
type Favorite struct {
	UserID    string    `json:"user_id"`
	Movie     Movie     `json:"movie"`
	CreatedAt time.Time `json:"created_at"`
}

// Reaction is a like or dislike of a movie by a user.
type Reaction struct {
	UserID    string    `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	Type      string    `json:"type"`
	Movie     *Movie    `json:"movie,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReactionCounts holds the aggregated reactions of one movie.
type ReactionCounts struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// Recommendation is a movie one user recommends to another.
type Recommendation struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name,omitempty"`
	ReceiverID string    `json:"receiver_id"`
	MovieID    int64     `json:"movie_id"`
	Movie      *Movie    `json:"movie,omitempty"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// Interaction is one weighted user-movie signal used to compute suggestions.
type Interaction struct {
	UserID   string
	MovieID  int64
	Weight   float64
	Favorite bool
}
