package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"cinesport/internal/database"
	"cinesport/internal/model"
	"cinesport/internal/repository"
)

// EventPostgres is a PostgreSQL implementation of repository.EventRepository.
type EventPostgres struct {
	db *sql.DB
}

// NewEventPostgres creates a new EventPostgres repository.
func NewEventPostgres(db *sql.DB) *EventPostgres {
	return &EventPostgres{db: db}
}

var _ repository.EventRepository = (*EventPostgres)(nil)

const eventColumns = `e.id, e.name, e.organizer_id, e.sport_id, e.location_id, e.address, e.venue_booked,
	e.starts_at, e.min_participants, e.max_participants, e.total_price, e.type, e.min_points, e.status, e.created_at`

func eventDest(e *model.Event, organizer *sql.NullString, sport, location *sql.NullInt64) []any {
	return []any{
		&e.ID,
		&e.Name,
		organizer,
		sport,
		location,
		&e.Address,
		&e.VenueBooked,
		&e.StartsAt,
		&e.MinParticipants,
		&e.MaxParticipants,
		&e.TotalPrice,
		&e.Type,
		&e.MinPoints,
		&e.Status,
		&e.CreatedAt,
	}
}

func scanEvent(s rowScanner) (*model.Event, error) {
	var (
		e         model.Event
		organizer sql.NullString
		sport     sql.NullInt64
		location  sql.NullInt64
	)
	if err := s.Scan(eventDest(&e, &organizer, &sport, &location)...); err != nil {
		return nil, err
	}
	e.OrganizerID = organizer.String
	e.SportID = sport.Int64
	e.LocationID = location.Int64
	return &e, nil
}

const insertReservation = `
	INSERT INTO participations (event_id, user_id, participant_name, confirmed, external)
	VALUES ($1, $2, $3, true, true)
`

// Create inserts the event and its reserved seats in a single transaction.
func (r *EventPostgres) Create(ctx context.Context, e *model.Event, reserved []string) (*model.Event, error) {
	const q = `
		INSERT INTO events AS e (name, organizer_id, sport_id, location_id, address, venue_booked, starts_at,
		                    min_participants, max_participants, total_price, type, min_points, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + eventColumns
	var out *model.Event
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		out, err = scanEvent(tx.QueryRowContext(ctx, q,
			e.Name,
			e.OrganizerID,
			nullIfZero(e.SportID),
			nullIfZero(e.LocationID),
			e.Address,
			e.VenueBooked,
			e.StartsAt,
			e.MinParticipants,
			e.MaxParticipants,
			e.TotalPrice,
			e.Type,
			e.MinPoints,
			e.Status,
		))
		if err != nil {
			return repository.Classify(err)
		}
		for _, name := range reserved {
			if _, err := tx.ExecContext(ctx, insertReservation, out.ID, e.OrganizerID, name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single event.
func (r *EventPostgres) FindByID(ctx context.Context, id string) (*model.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1`
	return scanEvent(r.db.QueryRowContext(ctx, q, id))
}

// eventWhere renders the filter into a WHERE clause with positional arguments.
func eventWhere(f model.EventFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.SportID != 0 {
		add("e.sport_id = $%d", f.SportID)
	}
	if f.LocationID != 0 {
		add("e.location_id = $%d", f.LocationID)
	}
	if f.From != nil {
		add("e.starts_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("e.starts_at <= $%d", *f.To)
	}
	if f.Type != "" {
		add("e.type = $%d", f.Type)
	}
	if len(f.Statuses) > 0 {
		add("e.status = ANY($%d)", pq.Array(f.Statuses))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns filtered events ordered by start time with display names and confirmed counts.
func (r *EventPostgres) List(ctx context.Context, f model.EventFilter, page repository.PageQuery) (*repository.PageResult[model.EventSummary], error) {
	where, args := eventWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events e`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `
		SELECT ` + eventColumns + `,
		       COALESCE(u.name, ''), COALESCE(s.name, ''), COALESCE(l.name, ''),
		       (SELECT COUNT(*) FROM participations p WHERE p.event_id = e.id AND p.confirmed)
		FROM events e
		LEFT JOIN users u ON u.id = e.organizer_id
		LEFT JOIN sports s ON s.id = e.sport_id
		LEFT JOIN locations l ON l.id = e.location_id` + where +
		fmt.Sprintf(" ORDER BY e.starts_at ASC, e.id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, q, append(args, page.Limit, page.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.EventSummary, 0)
	for rows.Next() {
		var (
			s         model.EventSummary
			organizer sql.NullString
			sport     sql.NullInt64
			location  sql.NullInt64
		)
		dest := append(eventDest(&s.Event, &organizer, &sport, &location),
			&s.OrganizerName, &s.SportName, &s.LocationName, &s.ConfirmedCount)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		s.OrganizerID = organizer.String
		s.SportID = sport.Int64
		s.LocationID = location.Int64
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.EventSummary]{Items: items, Total: total}, nil
}

// Update writes the editable fields of the event.
func (r *EventPostgres) Update(ctx context.Context, e *model.Event) error {
	const q = `
		UPDATE events
		SET name = $2, sport_id = $3, location_id = $4, address = $5, venue_booked = $6, starts_at = $7,
		    min_participants = $8, max_participants = $9, total_price = $10, type = $11, min_points = $12
		WHERE id = $1
	`
	return execOne(ctx, r.db, q,
		e.ID,
		e.Name,
		nullIfZero(e.SportID),
		nullIfZero(e.LocationID),
		e.Address,
		e.VenueBooked,
		e.StartsAt,
		e.MinParticipants,
		e.MaxParticipants,
		e.TotalPrice,
		e.Type,
		e.MinPoints,
	)
}

// SetStatus changes the status of the event.
func (r *EventPostgres) SetStatus(ctx context.Context, id, status string) error {
	const q = `UPDATE events SET status = $2 WHERE id = $1`
	return execOne(ctx, r.db, q, id, status)
}

// ReplaceReservations swaps every external participation for the given names.
func (r *EventPostgres) ReplaceReservations(ctx context.Context, eventID, organizerID string, names []string) error {
	const qDelete = `DELETE FROM participations WHERE event_id = $1 AND external`
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, qDelete, eventID); err != nil {
			return err
		}
		for _, name := range names {
			if _, err := tx.ExecContext(ctx, insertReservation, eventID, nullIfEmpty(organizerID), name); err != nil {
				return err
			}
		}
		return nil
	})
}

// Seats counts confirmed members and external reservations of the event.
func (r *EventPostgres) Seats(ctx context.Context, eventID string) (int, int, error) {
	const q = `
		SELECT COUNT(*) FILTER (WHERE confirmed AND NOT external), COUNT(*) FILTER (WHERE external)
		FROM participations
		WHERE event_id = $1
	`
	var members, reserved int
	if err := r.db.QueryRowContext(ctx, q, eventID).Scan(&members, &reserved); err != nil {
		return 0, 0, err
	}
	return members, reserved, nil
}
