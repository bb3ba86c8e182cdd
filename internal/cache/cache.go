// Package cache stores JSON-encoded read models with a TTL.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a JSON value cache keyed by string.
type Cache interface {
	// Get decodes the cached value into dst and reports whether the key was present.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	// DeleteByPrefix removes every key starting with prefix.
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// Key prefixes of cached read models.
const (
	MoviesPrefix      = "movies:"
	SuggestionsPrefix = "suggestions:"
)

// MovieListKey is the key of one page of the movie list.
func MovieListKey(limit, offset int) string {
	return fmt.Sprintf("%slist:%d:%d", MoviesPrefix, limit, offset)
}

// MovieDetailKey is the key of a movie looked up by TMDB id.
func MovieDetailKey(tmdbID int64) string {
	return fmt.Sprintf("%sdetail:%d", MoviesPrefix, tmdbID)
}

// SuggestionsKey is the key of a user's personalized suggestions.
func SuggestionsKey(userID string) string {
	return SuggestionsPrefix + userID
}

// Noop is a Cache that never stores anything. It is used when Redis is not configured.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error               { return nil }
func (Noop) DeleteByPrefix(context.Context, string) error          { return nil }
