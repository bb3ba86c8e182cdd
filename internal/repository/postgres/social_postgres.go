package postgres

import (
	"context"
	"database/sql"

	"cinesport/internal/model"
	"cinesport/internal/repository"
)

// movieRefColumns selects a joined movie aliased m without genres.
const movieRefColumns = `m.id, m.tmdb_id, m.title, m.overview, m.release_date, m.poster_path,
	m.backdrop_path, m.vote_average, m.created_at`

func scanMovieRef(dest *model.Movie, date *sql.NullTime, vote *sql.NullFloat64) []any {
	return []any{
		&dest.ID,
		&dest.TMDBID,
		&dest.Title,
		&dest.Overview,
		date,
		&dest.PosterPath,
		&dest.BackdropPath,
		vote,
		&dest.CreatedAt,
	}
}

// FavoritePostgres is a PostgreSQL implementation of repository.FavoriteRepository.
type FavoritePostgres struct {
	db *sql.DB
}

// NewFavoritePostgres creates a new FavoritePostgres repository.
func NewFavoritePostgres(db *sql.DB) *FavoritePostgres {
	return &FavoritePostgres{db: db}
}

var _ repository.FavoriteRepository = (*FavoritePostgres)(nil)

// Add inserts a favorite row.
func (r *FavoritePostgres) Add(ctx context.Context, userID string, movieID int64) error {
	const q = `INSERT INTO favorites (user_id, movie_id) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, q, userID, movieID); err != nil {
		return repository.Classify(err)
	}
	return nil
}

// Remove deletes a favorite row and reports whether it existed.
func (r *FavoritePostgres) Remove(ctx context.Context, userID string, movieID int64) (bool, error) {
	const q = `DELETE FROM favorites WHERE user_id = $1 AND movie_id = $2`
	res, err := r.db.ExecContext(ctx, q, userID, movieID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListByUser returns the user's favorites with movie details, newest first.
func (r *FavoritePostgres) ListByUser(ctx context.Context, userID string) ([]model.Favorite, error) {
	const q = `
		SELECT f.user_id, f.created_at, ` + movieRefColumns + `
		FROM favorites f
		JOIN movies m ON m.id = f.movie_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Favorite, 0)
	for rows.Next() {
		var (
			f    model.Favorite
			date sql.NullTime
			vote sql.NullFloat64
		)
		dest := append([]any{&f.UserID, &f.CreatedAt}, scanMovieRef(&f.Movie, &date, &vote)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		f.Movie.ReleaseDate = timePtr(date)
		f.Movie.VoteAverage = float64Ptr(vote)
		items = append(items, f)
	}
	return items, rows.Err()
}

// ReactionPostgres is a PostgreSQL implementation of repository.ReactionRepository.
type ReactionPostgres struct {
	db *sql.DB
}

// NewReactionPostgres creates a new ReactionPostgres repository.
func NewReactionPostgres(db *sql.DB) *ReactionPostgres {
	return &ReactionPostgres{db: db}
}

var _ repository.ReactionRepository = (*ReactionPostgres)(nil)

// Find returns the user's reaction to a movie.
func (r *ReactionPostgres) Find(ctx context.Context, userID string, movieID int64) (*model.Reaction, error) {
	const q = `SELECT user_id, movie_id, type, created_at FROM reactions WHERE user_id = $1 AND movie_id = $2`
	var out model.Reaction
	if err := r.db.QueryRowContext(ctx, q, userID, movieID).Scan(
		&out.UserID,
		&out.MovieID,
		&out.Type,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create inserts a reaction.
func (r *ReactionPostgres) Create(ctx context.Context, re *model.Reaction) error {
	const q = `INSERT INTO reactions (user_id, movie_id, type) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, q, re.UserID, re.MovieID, re.Type); err != nil {
		return repository.Classify(err)
	}
	return nil
}

// UpdateType switches the type of an existing reaction.
func (r *ReactionPostgres) UpdateType(ctx context.Context, userID string, movieID int64, reactionType string) error {
	const q = `UPDATE reactions SET type = $3, created_at = now() WHERE user_id = $1 AND movie_id = $2`
	return execOne(ctx, r.db, q, userID, movieID, reactionType)
}

// Delete removes a reaction.
func (r *ReactionPostgres) Delete(ctx context.Context, userID string, movieID int64) error {
	const q = `DELETE FROM reactions WHERE user_id = $1 AND movie_id = $2`
	return execOne(ctx, r.db, q, userID, movieID)
}

// Counts aggregates likes and dislikes of a movie.
func (r *ReactionPostgres) Counts(ctx context.Context, movieID int64) (*model.ReactionCounts, error) {
	const q = `
		SELECT COUNT(*) FILTER (WHERE type = 'like'), COUNT(*) FILTER (WHERE type = 'dislike')
		FROM reactions
		WHERE movie_id = $1
	`
	var c model.ReactionCounts
	if err := r.db.QueryRowContext(ctx, q, movieID).Scan(&c.Likes, &c.Dislikes); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByUser returns the user's reactions of one type with movie details, newest first.
func (r *ReactionPostgres) ListByUser(ctx context.Context, userID, reactionType string) ([]model.Reaction, error) {
	const q = `
		SELECT re.user_id, re.movie_id, re.type, re.created_at, ` + movieRefColumns + `
		FROM reactions re
		JOIN movies m ON m.id = re.movie_id
		WHERE re.user_id = $1 AND re.type = $2
		ORDER BY re.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID, reactionType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Reaction, 0)
	for rows.Next() {
		var (
			re   model.Reaction
			mv   model.Movie
			date sql.NullTime
			vote sql.NullFloat64
		)
		dest := append([]any{&re.UserID, &re.MovieID, &re.Type, &re.CreatedAt}, scanMovieRef(&mv, &date, &vote)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		mv.ReleaseDate = timePtr(date)
		mv.VoteAverage = float64Ptr(vote)
		re.Movie = &mv
		items = append(items, re)
	}
	return items, rows.Err()
}

// RecommendationPostgres is a PostgreSQL implementation of repository.RecommendationRepository.
type RecommendationPostgres struct {
	db *sql.DB
}

// NewRecommendationPostgres creates a new RecommendationPostgres repository.
func NewRecommendationPostgres(db *sql.DB) *RecommendationPostgres {
	return &RecommendationPostgres{db: db}
}

var _ repository.RecommendationRepository = (*RecommendationPostgres)(nil)

// Create inserts a recommendation and returns the stored record.
func (r *RecommendationPostgres) Create(ctx context.Context, rec *model.Recommendation) (*model.Recommendation, error) {
	const q = `
		INSERT INTO recommendations (sender_id, receiver_id, movie_id, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, sender_id, receiver_id, movie_id, message, created_at
	`
	var out model.Recommendation
	if err := r.db.QueryRowContext(ctx, q, rec.SenderID, rec.ReceiverID, rec.MovieID, rec.Message).Scan(
		&out.ID,
		&out.SenderID,
		&out.ReceiverID,
		&out.MovieID,
		&out.Message,
		&out.CreatedAt,
	); err != nil {
		return nil, repository.Classify(err)
	}
	return &out, nil
}

// FindByID fetches a single recommendation.
func (r *RecommendationPostgres) FindByID(ctx context.Context, id string) (*model.Recommendation, error) {
	const q = `SELECT id, sender_id, receiver_id, movie_id, message, created_at FROM recommendations WHERE id = $1`
	var out model.Recommendation
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&out.ID,
		&out.SenderID,
		&out.ReceiverID,
		&out.MovieID,
		&out.Message,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListReceived returns recommendations addressed to the user with sender and movie, newest first.
func (r *RecommendationPostgres) ListReceived(ctx context.Context, receiverID string) ([]model.Recommendation, error) {
	const q = `
		SELECT rc.id, rc.sender_id, u.name, rc.receiver_id, rc.movie_id, rc.message, rc.created_at, ` + movieRefColumns + `
		FROM recommendations rc
		JOIN users u ON u.id = rc.sender_id
		JOIN movies m ON m.id = rc.movie_id
		WHERE rc.receiver_id = $1
		ORDER BY rc.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Recommendation, 0)
	for rows.Next() {
		var (
			rc   model.Recommendation
			mv   model.Movie
			date sql.NullTime
			vote sql.NullFloat64
		)
		dest := append([]any{&rc.ID, &rc.SenderID, &rc.SenderName, &rc.ReceiverID, &rc.MovieID, &rc.Message, &rc.CreatedAt},
			scanMovieRef(&mv, &date, &vote)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		mv.ReleaseDate = timePtr(date)
		mv.VoteAverage = float64Ptr(vote)
		rc.Movie = &mv
		items = append(items, rc)
	}
	return items, rows.Err()
}

// CountReceived counts recommendations addressed to the user.
func (r *RecommendationPostgres) CountReceived(ctx context.Context, receiverID string) (int, error) {
	const q = `SELECT COUNT(*) FROM recommendations WHERE receiver_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, receiverID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Delete removes a recommendation by ID.
func (r *RecommendationPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM recommendations WHERE id = $1`
	return execOne(ctx, r.db, q, id)
}
