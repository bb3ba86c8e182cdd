package postgres

import (
	"context"
	"database/sql"

	"cinesport/internal/model"
	"cinesport/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, name, username, email, password_hash, birthdate, location, country,
	points, total_spent, favorite_sport_id, location_id, avatar_key, suspended_until, created_at, updated_at`

func scanUser(s rowScanner) (*model.User, error) {
	var (
		u         model.User
		birthdate sql.NullTime
		sportID   sql.NullInt64
		locID     sql.NullInt64
		suspended sql.NullTime
	)
	if err := s.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&birthdate,
		&u.Location,
		&u.Country,
		&u.Points,
		&u.TotalSpent,
		&sportID,
		&locID,
		&u.AvatarKey,
		&suspended,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Birthdate = timePtr(birthdate)
	u.FavoriteSportID = int64Ptr(sportID)
	u.LocationID = int64Ptr(locID)
	u.SuspendedUntil = timePtr(suspended)
	return &u, nil
}

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (name, username, email, password_hash, birthdate, location, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q,
		u.Name,
		u.Username,
		u.Email,
		u.PasswordHash,
		nullable(u.Birthdate),
		u.Location,
		u.Country,
	)
	out, err := scanUser(row)
	if err != nil {
		return nil, repository.Classify(err)
	}
	return out, nil
}

// FindByID fetches a single user by its ID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches a single user by email, case-insensitively.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

// Update writes the editable profile fields of the user.
func (r *UserPostgres) Update(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		UPDATE users
		SET name = $2, username = $3, email = $4, birthdate = $5, location = $6, country = $7,
		    favorite_sport_id = $8, location_id = $9, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q,
		u.ID,
		u.Name,
		u.Username,
		u.Email,
		nullable(u.Birthdate),
		u.Location,
		u.Country,
		nullable(u.FavoriteSportID),
		nullable(u.LocationID),
	)
	out, err := scanUser(row)
	if err != nil {
		return nil, repository.Classify(err)
	}
	return out, nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserPostgres) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const q = `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`
	return execOne(ctx, r.db, q, id, passwordHash)
}

// UpdateAvatar stores the object key of the user's avatar.
func (r *UserPostgres) UpdateAvatar(ctx context.Context, id, key string) error {
	const q = `UPDATE users SET avatar_key = $2, updated_at = now() WHERE id = $1`
	return execOne(ctx, r.db, q, id, key)
}

// Search returns users whose name or username contains query.
func (r *UserPostgres) Search(ctx context.Context, query string, limit int) ([]model.UserSummary, error) {
	const q = `
		SELECT id, name, username, points
		FROM users
		WHERE name ILIKE $1 OR username ILIKE $1
		ORDER BY username
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, containsPattern(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.UserSummary, 0)
	for rows.Next() {
		var s model.UserSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Username, &s.Points); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// Profile returns the public profile of a user with sport and location names resolved.
func (r *UserPostgres) Profile(ctx context.Context, id string) (*model.UserProfile, error) {
	const q = `
		SELECT u.id, u.name, u.username, u.location, u.country, u.points,
		       COALESCE(s.name, ''), COALESCE(l.name, ''), u.avatar_key <> '', u.created_at
		FROM users u
		LEFT JOIN sports s ON s.id = u.favorite_sport_id
		LEFT JOIN locations l ON l.id = u.location_id
		WHERE u.id = $1
	`
	var p model.UserProfile
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID,
		&p.Name,
		&p.Username,
		&p.Location,
		&p.Country,
		&p.Points,
		&p.FavoriteSport,
		&p.LocationName,
		&p.HasAvatar,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Stats aggregates the user's organized and confirmed events.
func (r *UserPostgres) Stats(ctx context.Context, id string) (*model.UserStats, error) {
	const qTotals = `
		SELECT
		  (SELECT COUNT(*) FROM events WHERE organizer_id = $1),
		  (SELECT COUNT(*) FROM participations WHERE user_id = $1 AND confirmed AND NOT external),
		  (SELECT COUNT(*) FROM events WHERE organizer_id = $1 AND status = 'completed')
	`
	var st model.UserStats
	if err := r.db.QueryRowContext(ctx, qTotals, id).Scan(
		&st.EventsOrganized,
		&st.EventsParticipated,
		&st.EventsCompleted,
	); err != nil {
		return nil, err
	}

	const qBySport = `
		SELECT s.id, s.name, COUNT(*)
		FROM participations p
		JOIN events e ON e.id = p.event_id
		JOIN sports s ON s.id = e.sport_id
		WHERE p.user_id = $1 AND p.confirmed AND NOT p.external
		GROUP BY s.id, s.name
		ORDER BY COUNT(*) DESC, s.name
	`
	rows, err := r.db.QueryContext(ctx, qBySport, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	st.BySport = make([]model.SportCount, 0)
	for rows.Next() {
		var sc model.SportCount
		if err := rows.Scan(&sc.SportID, &sc.SportName, &sc.Count); err != nil {
			return nil, err
		}
		st.BySport = append(st.BySport, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(st.BySport) > 0 {
		fav := st.BySport[0]
		st.FavoriteSport = &fav
	}
	return &st, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execOne runs a statement that must touch exactly one row; zero rows yields sql.ErrNoRows.
func execOne(ctx context.Context, db execer, q string, args ...any) error {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return repository.Classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
