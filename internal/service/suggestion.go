package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"cinesport/internal/cache"
	"cinesport/internal/model"
	"cinesport/internal/recommender"
	"cinesport/internal/repository"
)

// SuggestionsTTL is how long a user's suggestions stay cached.
const SuggestionsTTL = 10 * time.Minute

// SuggestionService defines personalized movie suggestions.
type SuggestionService interface {
	// Suggest returns movies the user has not interacted with yet, best first.
	Suggest(ctx context.Context, userID string) ([]model.Movie, error)
}

type suggestionService struct {
	movies repository.MovieRepository
	cache  cache.Cache
	topN   int
	log    logrus.FieldLogger
}

// NewSuggestionService constructs a new SuggestionService returning up to topN movies.
func NewSuggestionService(movies repository.MovieRepository, c cache.Cache, topN int, log logrus.FieldLogger) SuggestionService {
	if topN <= 0 {
		topN = recommender.DefaultTopN
	}
	return &suggestionService{movies: movies, cache: c, topN: topN, log: log.WithField("component", "suggestions")}
}

// forgetSuggestions drops a user's cached suggestions after their favorites or
// reactions change. A failure only leaves stale suggestions until the TTL expires.
func forgetSuggestions(ctx context.Context, c cache.Cache, log logrus.FieldLogger, userID string) {
	key := cache.SuggestionsKey(userID)
	if err := c.Delete(ctx, key); err != nil {
		log.WithField("key", key).WithError(err).Warn("cache invalidation failed")
	}
}

func (s *suggestionService) Suggest(ctx context.Context, userID string) ([]model.Movie, error) {
	key := cache.SuggestionsKey(userID)

	var cached []model.Movie
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.WithField("key", key).WithError(err).Warn("cache read failed")
	} else if hit {
		return cached, nil
	}

	movies, err := s.movies.All(ctx)
	if err != nil {
		return nil, err
	}
	interactions, err := s.movies.Interactions(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]model.Movie, len(movies))
	for _, m := range movies {
		byID[m.ID] = m
	}
	scored := recommender.Recommend(movies, interactions, userID, s.topN)
	out := make([]model.Movie, 0, len(scored))
	for _, sc := range scored {
		if m, ok := byID[sc.MovieID]; ok {
			out = append(out, m)
		}
	}

	if err := s.cache.Set(ctx, key, out, SuggestionsTTL); err != nil {
		s.log.WithField("key", key).WithError(err).Warn("cache write failed")
	}
	return out, nil
}
