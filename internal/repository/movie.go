package repository

import (
	"context"

	"cinesport/internal/model"
)

// MovieRepository defines data access for movies and genres.
type MovieRepository interface {
	// UpsertGenres inserts or renames genres keyed by TMDB id.
	UpsertGenres(ctx context.Context, genres []model.Genre) error
	// FindOrCreate returns the movie with m.TMDBID, inserting it when missing.
	// Genre links of a newly created movie are set from genreTMDBIDs.
	FindOrCreate(ctx context.Context, m *model.Movie, genreTMDBIDs []int64) (*model.Movie, bool, error)
	FindByTMDBID(ctx context.Context, tmdbID int64) (*model.Movie, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Movie], error)
	// SearchComplete matches titles case-insensitively among movies with every display field set.
	SearchComplete(ctx context.Context, title string, limit int) ([]model.Movie, error)
	// All returns every movie with its genre names.
	All(ctx context.Context) ([]model.Movie, error)
	// Interactions returns weighted favorite and reaction signals of all users.
	Interactions(ctx context.Context) ([]model.Interaction, error)
}

// FavoriteRepository defines data access for favorite movies.
type FavoriteRepository interface {
	// Add inserts a favorite. An existing favorite yields ErrConflict.
	Add(ctx context.Context, userID string, movieID int64) error
	// Remove deletes a favorite and reports whether one existed.
	Remove(ctx context.Context, userID string, movieID int64) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]model.Favorite, error)
}

// ReactionRepository defines data access for likes and dislikes.
type ReactionRepository interface {
	Find(ctx context.Context, userID string, movieID int64) (*model.Reaction, error)
	Create(ctx context.Context, r *model.Reaction) error
	UpdateType(ctx context.Context, userID string, movieID int64, reactionType string) error
	Delete(ctx context.Context, userID string, movieID int64) error
	Counts(ctx context.Context, movieID int64) (*model.ReactionCounts, error)
	ListByUser(ctx context.Context, userID, reactionType string) ([]model.Reaction, error)
}

// RecommendationRepository defines data access for user-to-user recommendations.
type RecommendationRepository interface {
	Create(ctx context.Context, r *model.Recommendation) (*model.Recommendation, error)
	FindByID(ctx context.Context, id string) (*model.Recommendation, error)
	ListReceived(ctx context.Context, receiverID string) ([]model.Recommendation, error)
	CountReceived(ctx context.Context, receiverID string) (int, error)
	Delete(ctx context.Context, id string) error
}
