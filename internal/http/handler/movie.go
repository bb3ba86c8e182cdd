package handler

import (
	"github.com/gofiber/fiber/v2"

	"cinesport/internal/service"
)

type populateResponse struct {
	Inserted int `json:"inserted"`
}

// PopulateMovies godoc
// @Summary Import TMDB movie lists into the catalog
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Success 200 {object} populateResponse
// @Router /movies/populate [post]
func PopulateMovies(svc service.MovieService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := svc.SyncGenres(c.UserContext()); err != nil {
			return respondError(c, err)
		}
		n, err := svc.Populate(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(populateResponse{Inserted: n})
	}
}

// ListMovies godoc
// @Summary List movies, newest release first
// @Tags movies
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.MovieListResult
// @Failure 400 {object} errorPayload
// @Router /movies/list [get]
func ListMovies(svc service.MovieService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, ok := queryInt(c, "limit", 10)
		if !ok {
			return invalidQuery(c, "limit")
		}
		offset, ok := queryInt(c, "offset", 0)
		if !ok {
			return invalidQuery(c, "offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// SearchMovies godoc
// @Summary Search movies by title, locally first then on TMDB
// @Tags movies
// @Produce json
// @Param title query string true "Title"
// @Success 200 {object} service.MovieSearchResult
// @Failure 400 {object} errorPayload
// @Router /movies/search [get]
func SearchMovies(svc service.MovieService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Search(c.UserContext(), c.Query("title"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// MovieDetails godoc
// @Summary Movie by TMDB id
// @Tags movies
// @Produce json
// @Param movieId path int true "TMDB id"
// @Success 200 {object} model.Movie
// @Failure 404 {object} errorPayload
// @Router /movies/details/{movieId} [get]
func MovieDetails(svc service.MovieService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "movieId")
		if !ok {
			return invalidID(c)
		}
		m, err := svc.Details(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(m)
	}
}

// MovieSuggestions godoc
// @Summary Personalized movie suggestions
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Movie
// @Router /movies/suggestions [get]
func MovieSuggestions(svc service.SuggestionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		movies, err := svc.Suggest(c.UserContext(), currentUser(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(movies)
	}
}
