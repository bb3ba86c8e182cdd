package postgres

import (
	"context"
	"database/sql"

	"cinesport/internal/model"
	"cinesport/internal/repository"
)

// SportPostgres is a PostgreSQL implementation of repository.SportRepository.
type SportPostgres struct {
	db *sql.DB
}

// NewSportPostgres creates a new SportPostgres repository.
func NewSportPostgres(db *sql.DB) *SportPostgres {
	return &SportPostgres{db: db}
}

var _ repository.SportRepository = (*SportPostgres)(nil)

func scanSport(s rowScanner) (*model.Sport, error) {
	var sp model.Sport
	if err := s.Scan(&sp.ID, &sp.Name, &sp.IconURL, &sp.PhotoURL); err != nil {
		return nil, err
	}
	return &sp, nil
}

// List returns all sports ordered by name.
func (r *SportPostgres) List(ctx context.Context) ([]model.Sport, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, icon_url, photo_url FROM sports ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Sport, 0)
	for rows.Next() {
		sp, err := scanSport(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *sp)
	}
	return items, rows.Err()
}

// FindByID fetches a single sport.
func (r *SportPostgres) FindByID(ctx context.Context, id int64) (*model.Sport, error) {
	return scanSport(r.db.QueryRowContext(ctx, `SELECT id, name, icon_url, photo_url FROM sports WHERE id = $1`, id))
}

// Create inserts a sport.
func (r *SportPostgres) Create(ctx context.Context, s *model.Sport) (*model.Sport, error) {
	const q = `INSERT INTO sports (name, icon_url, photo_url) VALUES ($1, $2, $3) RETURNING id, name, icon_url, photo_url`
	out, err := scanSport(r.db.QueryRowContext(ctx, q, s.Name, s.IconURL, s.PhotoURL))
	if err != nil {
		return nil, repository.Classify(err)
	}
	return out, nil
}

// Update rewrites a sport.
func (r *SportPostgres) Update(ctx context.Context, s *model.Sport) (*model.Sport, error) {
	const q = `
		UPDATE sports SET name = $2, icon_url = $3, photo_url = $4
		WHERE id = $1
		RETURNING id, name, icon_url, photo_url
	`
	out, err := scanSport(r.db.QueryRowContext(ctx, q, s.ID, s.Name, s.IconURL, s.PhotoURL))
	if err != nil {
		return nil, repository.Classify(err)
	}
	return out, nil
}

// Delete removes a sport by ID.
func (r *SportPostgres) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, `DELETE FROM sports WHERE id = $1`, id)
}

// LocationPostgres is a PostgreSQL implementation of repository.LocationRepository.
type LocationPostgres struct {
	db *sql.DB
}

// NewLocationPostgres creates a new LocationPostgres repository.
func NewLocationPostgres(db *sql.DB) *LocationPostgres {
	return &LocationPostgres{db: db}
}

var _ repository.LocationRepository = (*LocationPostgres)(nil)

// List returns all locations ordered by name.
func (r *LocationPostgres) List(ctx context.Context) ([]model.Location, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM locations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Location, 0)
	for rows.Next() {
		var l model.Location
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// Create inserts a location.
func (r *LocationPostgres) Create(ctx context.Context, l *model.Location) (*model.Location, error) {
	var out model.Location
	err := r.db.QueryRowContext(ctx, `INSERT INTO locations (name) VALUES ($1) RETURNING id, name`, l.Name).
		Scan(&out.ID, &out.Name)
	if err != nil {
		return nil, repository.Classify(err)
	}
	return &out, nil
}

// Update renames a location.
func (r *LocationPostgres) Update(ctx context.Context, l *model.Location) (*model.Location, error) {
	var out model.Location
	err := r.db.QueryRowContext(ctx, `UPDATE locations SET name = $2 WHERE id = $1 RETURNING id, name`, l.ID, l.Name).
		Scan(&out.ID, &out.Name)
	if err != nil {
		return nil, repository.Classify(err)
	}
	return &out, nil
}

// Delete removes a location by ID.
func (r *LocationPostgres) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, `DELETE FROM locations WHERE id = $1`, id)
}
