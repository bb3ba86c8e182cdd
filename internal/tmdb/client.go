// Package tmdb is a small client for The Movie Database v3 API.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"cinesport/internal/config"
	"cinesport/internal/model"
)

// Movie list categories synced into the local catalog.
var Categories = []string{"popular", "top_rated", "now_playing", "upcoming"}

// API is the subset of TMDB used by the movie service.
type API interface {
	Genres(ctx context.Context) ([]Genre, error)
	// Category returns one page of a movie list such as "popular".
	Category(ctx context.Context, category string, page int) ([]Movie, error)
	Search(ctx context.Context, query string) ([]Movie, error)
}

// Movie is a movie as returned by TMDB list and search endpoints.
type Movie struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Overview     string   `json:"overview"`
	ReleaseDate  string   `json:"release_date"`
	PosterPath   string   `json:"poster_path"`
	BackdropPath string   `json:"backdrop_path"`
	VoteAverage  *float64 `json:"vote_average"`
	GenreIDs     []int64  `json:"genre_ids"`
}

// Genre is a TMDB genre.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type pageResponse struct {
	Page    int     `json:"page"`
	Results []Movie `json:"results"`
}

type genreResponse struct {
	Genres []Genre `json:"genres"`
}

// ToModel converts a TMDB movie into a local movie. Unparseable release dates become nil.
func (m Movie) ToModel() *model.Movie {
	out := &model.Movie{
		TMDBID:       m.ID,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		VoteAverage:  m.VoteAverage,
	}
	if d, err := time.Parse(time.DateOnly, m.ReleaseDate); err == nil {
		out.ReleaseDate = &d
	}
	return out
}

// Client is the TMDB API client. Requests are throttled by a shared token bucket
// and traced as client spans.
type Client struct {
	apiKey   string
	baseURL  string
	language string
	http     *http.Client
	limiter  *rate.Limiter
}

// NewClient creates a TMDB client from config.
func NewClient(cfg config.TMDBConfig) *Client {
	rps := cfg.RatePerSecond
	if rps <= 0 {
		rps = 20
	}
	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  cfg.BaseURL,
		language: cfg.Language,
		http: &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)),
	}
}

// Genres fetches the movie genre list.
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var out genreResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

// Category fetches one page of a movie list.
func (c *Client) Category(ctx context.Context, category string, page int) ([]Movie, error) {
	var out pageResponse
	q := url.Values{"page": {strconv.Itoa(page)}}
	if err := c.get(ctx, "/movie/"+category, q, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Search queries movies by title.
func (c *Client) Search(ctx context.Context, query string) ([]Movie, error) {
	var out pageResponse
	if err := c.get(ctx, "/search/movie", url.Values{"query": {query}}, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, dst any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	if q == nil {
		q = url.Values{}
	}
	q.Set("api_key", c.apiKey)
	if c.language != "" {
		q.Set("language", c.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("tmdb %s returned status %d: %s", path, resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode tmdb %s: %w", path, err)
	}
	return nil
}
