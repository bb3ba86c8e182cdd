package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"cinesport/internal/database"
	"cinesport/internal/model"
	"cinesport/internal/repository"
)

// MoviePostgres is a PostgreSQL implementation of repository.MovieRepository.
type MoviePostgres struct {
	db *sql.DB
}

// NewMoviePostgres creates a new MoviePostgres repository.
func NewMoviePostgres(db *sql.DB) *MoviePostgres {
	return &MoviePostgres{db: db}
}

var _ repository.MovieRepository = (*MoviePostgres)(nil)

// genreSeparator joins genre names in aggregated rows.
const genreSeparator = "|"

const movieSelect = `
	SELECT m.id, m.tmdb_id, m.title, m.overview, m.release_date, m.poster_path, m.backdrop_path,
	       m.vote_average, m.created_at,
	       COALESCE(string_agg(g.name, '|' ORDER BY g.name), '')
	FROM movies m
	LEFT JOIN movie_genres mg ON mg.movie_id = m.id
	LEFT JOIN genres g ON g.id = mg.genre_id
`

func scanMovie(s rowScanner) (*model.Movie, error) {
	var (
		m      model.Movie
		date   sql.NullTime
		vote   sql.NullFloat64
		genres string
	)
	if err := s.Scan(
		&m.ID,
		&m.TMDBID,
		&m.Title,
		&m.Overview,
		&date,
		&m.PosterPath,
		&m.BackdropPath,
		&vote,
		&m.CreatedAt,
		&genres,
	); err != nil {
		return nil, err
	}
	m.ReleaseDate = timePtr(date)
	m.VoteAverage = float64Ptr(vote)
	m.Genres = splitGenres(genres)
	return &m, nil
}

func splitGenres(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, genreSeparator)
}

func collectMovies(rows *sql.Rows) ([]model.Movie, error) {
	defer rows.Close()
	items := make([]model.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// UpsertGenres inserts genres or refreshes their names by TMDB id.
func (r *MoviePostgres) UpsertGenres(ctx context.Context, genres []model.Genre) error {
	if len(genres) == 0 {
		return nil
	}
	const q = `
		INSERT INTO genres (tmdb_id, name) VALUES ($1, $2)
		ON CONFLICT (tmdb_id) DO UPDATE SET name = EXCLUDED.name
	`
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, g := range genres {
			if _, err := tx.ExecContext(ctx, q, g.TMDBID, g.Name); err != nil {
				return err
			}
		}
		return nil
	})
}

// FindOrCreate returns the stored movie for m.TMDBID or inserts it with its genre links.
func (r *MoviePostgres) FindOrCreate(ctx context.Context, m *model.Movie, genreTMDBIDs []int64) (*model.Movie, bool, error) {
	existing, err := r.FindByTMDBID(ctx, m.TMDBID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}

	const qInsert = `
		INSERT INTO movies (tmdb_id, title, overview, release_date, poster_path, backdrop_path, vote_average)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tmdb_id) DO NOTHING
		RETURNING id
	`
	const qLink = `
		INSERT INTO movie_genres (movie_id, genre_id)
		SELECT $1, g.id FROM genres g WHERE g.tmdb_id = ANY($2)
		ON CONFLICT DO NOTHING
	`
	created := true
	err = database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRowContext(ctx, qInsert,
			m.TMDBID,
			m.Title,
			m.Overview,
			nullable(m.ReleaseDate),
			m.PosterPath,
			m.BackdropPath,
			nullable(m.VoteAverage),
		).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			// inserted concurrently by another request
			created = false
			return nil
		}
		if err != nil {
			return err
		}
		if len(genreTMDBIDs) == 0 {
			return nil
		}
		_, err = tx.ExecContext(ctx, qLink, id, pq.Array(genreTMDBIDs))
		return err
	})
	if err != nil {
		return nil, false, err
	}

	stored, err := r.FindByTMDBID(ctx, m.TMDBID)
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}

// FindByTMDBID fetches a movie with its genres by TMDB id.
func (r *MoviePostgres) FindByTMDBID(ctx context.Context, tmdbID int64) (*model.Movie, error) {
	const q = movieSelect + ` WHERE m.tmdb_id = $1 GROUP BY m.id`
	return scanMovie(r.db.QueryRowContext(ctx, q, tmdbID))
}

// List returns movies newest release first using LIMIT/OFFSET pagination and a total count.
func (r *MoviePostgres) List(ctx context.Context, page repository.PageQuery) (*repository.PageResult[model.Movie], error) {
	const qCount = `SELECT COUNT(*) FROM movies`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = movieSelect + `
		GROUP BY m.id
		ORDER BY m.release_date DESC NULLS LAST, m.id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items, err := collectMovies(rows)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Movie]{Items: items, Total: total}, nil
}

// SearchComplete matches titles among movies that have every display field.
func (r *MoviePostgres) SearchComplete(ctx context.Context, title string, limit int) ([]model.Movie, error) {
	const q = movieSelect + `
		WHERE m.title ILIKE $1
		  AND m.overview <> '' AND m.release_date IS NOT NULL
		  AND m.poster_path <> '' AND m.backdrop_path <> '' AND m.vote_average IS NOT NULL
		GROUP BY m.id
		ORDER BY m.release_date DESC, m.id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, containsPattern(title), limit)
	if err != nil {
		return nil, err
	}
	return collectMovies(rows)
}

// All returns every stored movie with genres.
func (r *MoviePostgres) All(ctx context.Context) ([]model.Movie, error) {
	const q = movieSelect + ` GROUP BY m.id ORDER BY m.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectMovies(rows)
}

// Interactions returns favorites (weight 2), likes (1) and dislikes (-1) of all users.
func (r *MoviePostgres) Interactions(ctx context.Context) ([]model.Interaction, error) {
	const q = `
		SELECT user_id, movie_id, 2.0, true FROM favorites
		UNION ALL
		SELECT user_id, movie_id, CASE WHEN type = 'like' THEN 1.0 ELSE -1.0 END, false FROM reactions
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Interaction, 0)
	for rows.Next() {
		var in model.Interaction
		if err := rows.Scan(&in.UserID, &in.MovieID, &in.Weight, &in.Favorite); err != nil {
			return nil, err
		}
		items = append(items, in)
	}
	return items, rows.Err()
}
