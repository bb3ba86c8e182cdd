package postgres

import (
	"context"
	"database/sql"

	"cinesport/internal/database"
	"cinesport/internal/model"
	"cinesport/internal/repository"
)

// ParticipationPostgres is a PostgreSQL implementation of repository.ParticipationRepository.
type ParticipationPostgres struct {
	db *sql.DB
}

// NewParticipationPostgres creates a new ParticipationPostgres repository.
func NewParticipationPostgres(db *sql.DB) *ParticipationPostgres {
	return &ParticipationPostgres{db: db}
}

var _ repository.ParticipationRepository = (*ParticipationPostgres)(nil)

const participationSelect = `
	SELECT p.id, p.event_id, p.user_id, COALESCE(u.name, ''), p.participant_name,
	       p.confirmed, p.invited, p.pending_request, p.external, p.joined_at
	FROM participations p
	LEFT JOIN users u ON u.id = p.user_id
`

func scanParticipation(s rowScanner) (*model.Participation, error) {
	var (
		p      model.Participation
		userID sql.NullString
	)
	if err := s.Scan(
		&p.ID,
		&p.EventID,
		&userID,
		&p.UserName,
		&p.ParticipantName,
		&p.Confirmed,
		&p.Invited,
		&p.PendingRequest,
		&p.External,
		&p.JoinedAt,
	); err != nil {
		return nil, err
	}
	p.UserID = userID.String
	return &p, nil
}

// FindByID fetches a single participation.
func (r *ParticipationPostgres) FindByID(ctx context.Context, id string) (*model.Participation, error) {
	const q = participationSelect + ` WHERE p.id = $1`
	return scanParticipation(r.db.QueryRowContext(ctx, q, id))
}

// FindMember fetches the non-external participation of a user in an event.
func (r *ParticipationPostgres) FindMember(ctx context.Context, eventID, userID string) (*model.Participation, error) {
	const q = participationSelect + ` WHERE p.event_id = $1 AND p.user_id = $2 AND NOT p.external`
	return scanParticipation(r.db.QueryRowContext(ctx, q, eventID, userID))
}

// ListByEvent returns every participation of the event in join order.
func (r *ParticipationPostgres) ListByEvent(ctx context.Context, eventID string) ([]model.Participation, error) {
	const q = participationSelect + ` WHERE p.event_id = $1 ORDER BY p.joined_at ASC, p.id`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Participation, 0)
	for rows.Next() {
		p, err := scanParticipation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

const countConfirmed = `SELECT COUNT(*) FROM participations WHERE event_id = $1 AND confirmed`

// CountConfirmed counts confirmed seats, reservations included.
func (r *ParticipationPostgres) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countConfirmed, eventID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

const insertParticipation = `
	INSERT INTO participations (event_id, user_id, participant_name, confirmed, invited, pending_request, external)
	VALUES ($1, $2, $3, $4, $5, $6, false)
	RETURNING id, joined_at
`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertMember(ctx context.Context, db queryRower, p *model.Participation) (*model.Participation, error) {
	out := *p
	out.External = false
	if err := db.QueryRowContext(ctx, insertParticipation,
		p.EventID,
		p.UserID,
		p.ParticipantName,
		p.Confirmed,
		p.Invited,
		p.PendingRequest,
	).Scan(&out.ID, &out.JoinedAt); err != nil {
		return nil, repository.Classify(err)
	}
	return &out, nil
}

// Create inserts a member participation as given.
func (r *ParticipationPostgres) Create(ctx context.Context, p *model.Participation) (*model.Participation, error) {
	return insertMember(ctx, r.db, p)
}

// lockCapacity locks the event row and fails when its confirmed seats reached capacity.
func lockCapacity(ctx context.Context, tx *sql.Tx, eventID string, capacity int) error {
	var one int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&one); err != nil {
		return err
	}
	var n int
	if err := tx.QueryRowContext(ctx, countConfirmed, eventID).Scan(&n); err != nil {
		return err
	}
	if n >= capacity {
		return repository.ErrCapacityReached
	}
	return nil
}

// CreateConfirmed inserts a confirmed participation while seats remain.
func (r *ParticipationPostgres) CreateConfirmed(ctx context.Context, p *model.Participation, capacity int) (*model.Participation, error) {
	in := *p
	in.Confirmed = true
	in.PendingRequest = false

	var out *model.Participation
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := lockCapacity(ctx, tx, p.EventID, capacity); err != nil {
			return err
		}
		var err error
		out, err = insertMember(ctx, tx, &in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Confirm marks a pending participation confirmed while seats remain.
func (r *ParticipationPostgres) Confirm(ctx context.Context, id, eventID string, capacity int) error {
	const q = `UPDATE participations SET confirmed = true, pending_request = false WHERE id = $1 AND event_id = $2`
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := lockCapacity(ctx, tx, eventID, capacity); err != nil {
			return err
		}
		return execOne(ctx, tx, q, id, eventID)
	})
}

// Delete removes a participation by ID.
func (r *ParticipationPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM participations WHERE id = $1`
	return execOne(ctx, r.db, q, id)
}

// IsConfirmedMember reports whether the user holds a confirmed, non-external seat.
func (r *ParticipationPostgres) IsConfirmedMember(ctx context.Context, eventID, userID string) (bool, error) {
	const q = `
		SELECT EXISTS (
		  SELECT 1 FROM participations
		  WHERE event_id = $1 AND user_id = $2 AND confirmed AND NOT external
		)
	`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, eventID, userID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
