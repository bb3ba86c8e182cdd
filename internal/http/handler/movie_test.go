package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinesport/internal/model"
	"cinesport/internal/service"
	serviceMocks "cinesport/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListMovies(t *testing.T) {
	mockSvc := new(serviceMocks.MockMovieService)
	app := fiber.New()
	app.Get("/movies/list", ListMovies(mockSvc))

	t.Run("success", func(t *testing.T) {
		res := &service.MovieListResult{Items: []model.Movie{{TMDBID: 603, Title: "The Matrix"}}, Total: 1}
		mockSvc.On("List", mock.Anything, 20, 40).Return(res, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/movies/list?limit=20&offset=40", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Data  []model.Movie `json:"data"`
			Total int           `json:"total"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Len(t, body.Data, 1)
		assert.Equal(t, 1, body.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/movies/list?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 10, 0).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/movies/list", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestSearchMovies(t *testing.T) {
	mockSvc := new(serviceMocks.MockMovieService)
	app := fiber.New()
	app.Get("/movies/search", SearchMovies(mockSvc))

	t.Run("tmdb fallback", func(t *testing.T) {
		mockSvc.On("Search", mock.Anything, "matrix").Return(&service.MovieSearchResult{
			Source: service.SourceTMDB,
			Movies: []model.Movie{{TMDBID: 603}},
		}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/movies/search?title=matrix", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body service.MovieSearchResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "tmdb", body.Source)
	})

	t.Run("missing title", func(t *testing.T) {
		mockSvc.On("Search", mock.Anything, "").Return(nil, &service.Error{Kind: service.ErrInvalidInput, Msg: "title is required"}).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/movies/search", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "title is required", decodeError(t, resp).Error.Message)
	})

	mockSvc.AssertExpectations(t)
}

func TestMovieDetails(t *testing.T) {
	mockSvc := new(serviceMocks.MockMovieService)
	app := fiber.New()
	app.Get("/movies/details/:movieId", MovieDetails(mockSvc))

	t.Run("found", func(t *testing.T) {
		mockSvc.On("Details", mock.Anything, int64(603)).Return(&model.Movie{TMDBID: 603, Title: "The Matrix"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/movies/details/603", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not stored", func(t *testing.T) {
		mockSvc.On("Details", mock.Anything, int64(1)).Return(nil, &service.Error{Kind: service.ErrNotFound, Msg: "movie not found"}).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/movies/details/1", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/movies/details/abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func TestPopulateMovies(t *testing.T) {
	mockSvc := new(serviceMocks.MockMovieService)
	app := fiber.New()
	app.Post("/movies/populate", PopulateMovies(mockSvc))

	mockSvc.On("SyncGenres", mock.Anything).Return(19, nil).Once()
	mockSvc.On("Populate", mock.Anything).Return(42, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/movies/populate", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body populateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 42, body.Inserted)
	mockSvc.AssertExpectations(t)
}

func TestMovieSuggestions(t *testing.T) {
	mockSvc := new(serviceMocks.MockSuggestionService)
	app := fiber.New()
	app.Get("/movies/suggestions", asUser(testUserID), MovieSuggestions(mockSvc))

	mockSvc.On("Suggest", mock.Anything, testUserID).Return([]model.Movie{{TMDBID: 604}}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/movies/suggestions", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body []model.Movie
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(604), body[0].TMDBID)
	mockSvc.AssertExpectations(t)
}
