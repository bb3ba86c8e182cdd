package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"cinesport/internal/cache"
	"cinesport/internal/model"
	"cinesport/internal/repository"
)

// Reaction toggle outcomes.
const (
	ReactionAdded    = "added"
	ReactionRemoved  = "removed"
	ReactionSwitched = "switched"
)

// ReactionResult describes what a toggle did. Type is empty after a removal.
type ReactionResult struct {
	Action string `json:"action"`
	Type   string `json:"type,omitempty"`
}

// RecommendInput is a movie recommendation to another user.
type RecommendInput struct {
	ReceiverID string `json:"receiver_id"`
	TMDBID     int64  `json:"tmdb_id"`
	Message    string `json:"message"`
}

// FavoriteService defines favorite movie use cases. Movies are addressed by TMDB id.
type FavoriteService interface {
	Add(ctx context.Context, userID string, tmdbID int64) error
	List(ctx context.Context, userID string) ([]model.Favorite, error)
	Remove(ctx context.Context, userID string, tmdbID int64) error
}

// ReactionService defines like and dislike use cases. Movies are addressed by TMDB id.
type ReactionService interface {
	// Toggle adds the reaction, removes it when repeated, or switches its type.
	Toggle(ctx context.Context, userID string, tmdbID int64, reactionType string) (*ReactionResult, error)
	Counts(ctx context.Context, tmdbID int64) (*model.ReactionCounts, error)
	Mine(ctx context.Context, userID, reactionType string) ([]model.Reaction, error)
}

// RecommendationService defines user to user movie recommendations.
type RecommendationService interface {
	Send(ctx context.Context, senderID string, in RecommendInput) (*model.Recommendation, error)
	Received(ctx context.Context, userID string) ([]model.Recommendation, error)
	CountReceived(ctx context.Context, userID string) (int, error)
	// Delete removes a recommendation. Only its receiver may delete it.
	Delete(ctx context.Context, userID, id string) error
}

// findMovie resolves a TMDB id to a stored movie. Unknown movies are invalid input.
func findMovie(ctx context.Context, movies repository.MovieRepository, tmdbID int64) (*model.Movie, error) {
	if tmdbID <= 0 {
		return nil, invalid("movieId is required")
	}
	m, err := movies.FindByTMDBID(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invalid("movie not found")
		}
		return nil, err
	}
	return m, nil
}

type favoriteService struct {
	movies    repository.MovieRepository
	favorites repository.FavoriteRepository
	cache     cache.Cache
	log       logrus.FieldLogger
}

// NewFavoriteService constructs a new FavoriteService. Changes drop the user's cached suggestions.
func NewFavoriteService(movies repository.MovieRepository, favorites repository.FavoriteRepository, c cache.Cache, log logrus.FieldLogger) FavoriteService {
	return &favoriteService{movies: movies, favorites: favorites, cache: c, log: log.WithField("component", "favorites")}
}

func (s *favoriteService) Add(ctx context.Context, userID string, tmdbID int64) error {
	m, err := findMovie(ctx, s.movies, tmdbID)
	if err != nil {
		return err
	}
	if err := s.favorites.Add(ctx, userID, m.ID); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return invalid("movie is already a favorite")
		}
		return err
	}
	forgetSuggestions(ctx, s.cache, s.log, userID)
	return nil
}

func (s *favoriteService) List(ctx context.Context, userID string) ([]model.Favorite, error) {
	favs, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if favs == nil {
		favs = []model.Favorite{}
	}
	return favs, nil
}

func (s *favoriteService) Remove(ctx context.Context, userID string, tmdbID int64) error {
	m, err := findMovie(ctx, s.movies, tmdbID)
	if err != nil {
		return err
	}
	removed, err := s.favorites.Remove(ctx, userID, m.ID)
	if err != nil {
		return err
	}
	if !removed {
		return invalid("movie is not a favorite")
	}
	forgetSuggestions(ctx, s.cache, s.log, userID)
	return nil
}

type reactionService struct {
	movies    repository.MovieRepository
	reactions repository.ReactionRepository
	cache     cache.Cache
	log       logrus.FieldLogger
}

// NewReactionService constructs a new ReactionService. Toggles drop the user's cached suggestions.
func NewReactionService(movies repository.MovieRepository, reactions repository.ReactionRepository, c cache.Cache, log logrus.FieldLogger) ReactionService {
	return &reactionService{movies: movies, reactions: reactions, cache: c, log: log.WithField("component", "reactions")}
}

func validReaction(t string) bool {
	return t == model.ReactionLike || t == model.ReactionDislike
}

func (s *reactionService) Toggle(ctx context.Context, userID string, tmdbID int64, reactionType string) (*ReactionResult, error) {
	res, err := s.toggle(ctx, userID, tmdbID, reactionType)
	if err != nil {
		return nil, err
	}
	forgetSuggestions(ctx, s.cache, s.log, userID)
	return res, nil
}

func (s *reactionService) toggle(ctx context.Context, userID string, tmdbID int64, reactionType string) (*ReactionResult, error) {
	reactionType = strings.ToLower(strings.TrimSpace(reactionType))
	if !validReaction(reactionType) {
		return nil, invalid("type must be like or dislike")
	}
	m, err := findMovie(ctx, s.movies, tmdbID)
	if err != nil {
		return nil, err
	}

	current, err := s.reactions.Find(ctx, userID, m.ID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := s.reactions.Create(ctx, &model.Reaction{UserID: userID, MovieID: m.ID, Type: reactionType}); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return nil, conflict("reaction changed concurrently, try again")
			}
			return nil, err
		}
		return &ReactionResult{Action: ReactionAdded, Type: reactionType}, nil
	case err != nil:
		return nil, err
	}

	if current.Type == reactionType {
		if err := s.reactions.Delete(ctx, userID, m.ID); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return &ReactionResult{Action: ReactionRemoved}, nil
	}
	if err := s.reactions.UpdateType(ctx, userID, m.ID, reactionType); err != nil {
		return nil, err
	}
	return &ReactionResult{Action: ReactionSwitched, Type: reactionType}, nil
}

func (s *reactionService) Counts(ctx context.Context, tmdbID int64) (*model.ReactionCounts, error) {
	m, err := findMovie(ctx, s.movies, tmdbID)
	if err != nil {
		return nil, err
	}
	return s.reactions.Counts(ctx, m.ID)
}

func (s *reactionService) Mine(ctx context.Context, userID, reactionType string) ([]model.Reaction, error) {
	if !validReaction(reactionType) {
		return nil, invalid("type must be like or dislike")
	}
	out, err := s.reactions.ListByUser(ctx, userID, reactionType)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Reaction{}
	}
	return out, nil
}

type recommendationService struct {
	movies repository.MovieRepository
	users  repository.UserRepository
	recs   repository.RecommendationRepository
}

// NewRecommendationService constructs a new RecommendationService.
func NewRecommendationService(movies repository.MovieRepository, users repository.UserRepository, recs repository.RecommendationRepository) RecommendationService {
	return &recommendationService{movies: movies, users: users, recs: recs}
}

func (s *recommendationService) Send(ctx context.Context, senderID string, in RecommendInput) (*model.Recommendation, error) {
	if in.ReceiverID == "" || in.TMDBID <= 0 {
		return nil, invalid("receiver_id and tmdb_id are required")
	}
	m, err := findMovie(ctx, s.movies, in.TMDBID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, in.ReceiverID); err != nil {
		return nil, missing(err, "receiver not found")
	}
	rec, err := s.recs.Create(ctx, &model.Recommendation{
		SenderID:   senderID,
		ReceiverID: in.ReceiverID,
		MovieID:    m.ID,
		Message:    strings.TrimSpace(in.Message),
	})
	if err != nil {
		return nil, err
	}
	rec.Movie = m
	return rec, nil
}

func (s *recommendationService) Received(ctx context.Context, userID string) ([]model.Recommendation, error) {
	out, err := s.recs.ListReceived(ctx, userID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Recommendation{}
	}
	return out, nil
}

func (s *recommendationService) CountReceived(ctx context.Context, userID string) (int, error) {
	return s.recs.CountReceived(ctx, userID)
}

func (s *recommendationService) Delete(ctx context.Context, userID, id string) error {
	rec, err := s.recs.FindByID(ctx, id)
	if err != nil {
		return missing(err, "recommendation not found")
	}
	if rec.ReceiverID != userID {
		return forbidden("only the receiver can delete a recommendation")
	}
	if err := s.recs.Delete(ctx, id); err != nil {
		return missing(err, "recommendation not found")
	}
	return nil
}
