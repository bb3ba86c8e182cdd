package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"cinesport/internal/cache"
	"cinesport/internal/model"
	"cinesport/internal/repository"
	"cinesport/internal/tmdb"
)

// Cache lifetimes of movie read models.
const (
	MovieListTTL   = 5 * time.Minute
	MovieDetailTTL = 30 * time.Minute
)

// Search sources.
const (
	SourceDatabase = "database"
	SourceTMDB     = "tmdb"
)

const movieSearchLimit = 20

// MovieListResult is one page of the local movie catalog.
type MovieListResult struct {
	Items []model.Movie `json:"data"`
	Total int           `json:"total"`
}

// MovieSearchResult tells where matching movies were found.
type MovieSearchResult struct {
	Source  string        `json:"source"`
	Movies  []model.Movie `json:"movies"`
	Message string        `json:"message,omitempty"`
}

// MovieService defines catalog synchronization with TMDB and catalog reads.
type MovieService interface {
	// SyncGenres upserts the TMDB genre list and returns how many genres were received.
	SyncGenres(ctx context.Context) (int, error)
	// Populate imports the TMDB category lists and returns how many movies were inserted.
	Populate(ctx context.Context) (int, error)
	List(ctx context.Context, limit, offset int) (*MovieListResult, error)
	// Search looks for complete movies locally first and falls back to TMDB.
	Search(ctx context.Context, title string) (*MovieSearchResult, error)
	// Details returns a stored movie by its TMDB id.
	Details(ctx context.Context, tmdbID int64) (*model.Movie, error)
}

type movieService struct {
	movies repository.MovieRepository
	api    tmdb.API
	cache  cache.Cache
	pages  int
	log    logrus.FieldLogger
}

// NewMovieService constructs a new MovieService. pages is the number of TMDB
// pages imported per category.
func NewMovieService(movies repository.MovieRepository, api tmdb.API, c cache.Cache, pages int, log logrus.FieldLogger) MovieService {
	if pages <= 0 {
		pages = 1
	}
	return &movieService{
		movies: movies,
		api:    api,
		cache:  c,
		pages:  pages,
		log:    log.WithField("component", "movies"),
	}
}

func (s *movieService) SyncGenres(ctx context.Context) (int, error) {
	genres, err := s.api.Genres(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch genres: %w", err)
	}
	out := make([]model.Genre, 0, len(genres))
	for _, g := range genres {
		out = append(out, model.Genre{TMDBID: g.ID, Name: g.Name})
	}
	if err := s.movies.UpsertGenres(ctx, out); err != nil {
		return 0, fmt.Errorf("save genres: %w", err)
	}
	s.log.WithFields(logrus.Fields{"event": "genres_synced", "count": len(out)}).Info("genres synchronized")
	return len(out), nil
}

func (s *movieService) Populate(ctx context.Context) (int, error) {
	inserted := 0
	for _, category := range tmdb.Categories {
		for page := 1; page <= s.pages; page++ {
			results, err := s.api.Category(ctx, category, page)
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"event":    "populate_page_failed",
					"category": category,
					"page":     page,
				}).WithError(err).Warn("skipping rest of category")
				break
			}
			if len(results) == 0 {
				break
			}
			for _, r := range results {
				_, created, err := s.movies.FindOrCreate(ctx, r.ToModel(), r.GenreIDs)
				if err != nil {
					return inserted, fmt.Errorf("save movie %d: %w", r.ID, err)
				}
				if created {
					inserted++
				}
			}
		}
	}

	s.invalidate(ctx)
	s.log.WithFields(logrus.Fields{"event": "movies_populated", "inserted": inserted}).Info("movie catalog populated")
	return inserted, nil
}

func (s *movieService) invalidate(ctx context.Context) {
	for _, prefix := range []string{cache.MoviesPrefix, cache.SuggestionsPrefix} {
		if err := s.cache.DeleteByPrefix(ctx, prefix); err != nil {
			s.log.WithField("prefix", prefix).WithError(err).Warn("cache invalidation failed")
		}
	}
}

func (s *movieService) List(ctx context.Context, limit, offset int) (*MovieListResult, error) {
	limit, offset = clampPage(limit, offset)
	key := cache.MovieListKey(limit, offset)

	var cached MovieListResult
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.WithField("key", key).WithError(err).Warn("cache read failed")
	} else if hit {
		return &cached, nil
	}

	res, err := s.movies.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	out := &MovieListResult{Items: res.Items, Total: res.Total}
	if out.Items == nil {
		out.Items = []model.Movie{}
	}
	if err := s.cache.Set(ctx, key, out, MovieListTTL); err != nil {
		s.log.WithField("key", key).WithError(err).Warn("cache write failed")
	}
	return out, nil
}

func (s *movieService) Search(ctx context.Context, title string) (*MovieSearchResult, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalid("title is required")
	}

	local, err := s.movies.SearchComplete(ctx, title, movieSearchLimit)
	if err != nil {
		return nil, err
	}
	if len(local) > 0 {
		return &MovieSearchResult{Source: SourceDatabase, Movies: local}, nil
	}

	remote, err := s.api.Search(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("search tmdb: %w", err)
	}
	found := make([]model.Movie, 0, len(remote))
	for _, r := range remote {
		m := r.ToModel()
		if !m.Complete() {
			continue
		}
		stored, _, err := s.movies.FindOrCreate(ctx, m, r.GenreIDs)
		if err != nil {
			return nil, fmt.Errorf("save movie %d: %w", r.ID, err)
		}
		found = append(found, *stored)
	}
	out := &MovieSearchResult{Source: SourceTMDB, Movies: found}
	if len(found) == 0 {
		out.Message = "no movies found"
	}
	return out, nil
}

func (s *movieService) Details(ctx context.Context, tmdbID int64) (*model.Movie, error) {
	if tmdbID <= 0 {
		return nil, invalid("invalid movie id")
	}
	key := cache.MovieDetailKey(tmdbID)

	var cached model.Movie
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.log.WithField("key", key).WithError(err).Warn("cache read failed")
	} else if hit {
		return &cached, nil
	}

	m, err := s.movies.FindByTMDBID(ctx, tmdbID)
	if err != nil {
		return nil, missing(err, "movie not found")
	}
	if err := s.cache.Set(ctx, key, m, MovieDetailTTL); err != nil {
		s.log.WithField("key", key).WithError(err).Warn("cache write failed")
	}
	return m, nil
}
