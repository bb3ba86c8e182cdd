package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"cinesport/internal/database"
	"cinesport/internal/model"
	"cinesport/internal/repository"
)

// ReportPostgres is a PostgreSQL implementation of repository.ReportRepository.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

const reportColumns = `id, reporter_id, reported_id, event_id, type, description, created_at`

func scanReport(s rowScanner) (*model.Report, error) {
	var rp model.Report
	if err := s.Scan(
		&rp.ID,
		&rp.ReporterID,
		&rp.ReportedID,
		&rp.EventID,
		&rp.Type,
		&rp.Description,
		&rp.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rp, nil
}

func collectReports(rows *sql.Rows) ([]model.Report, error) {
	defer rows.Close()
	items := make([]model.Report, 0)
	for rows.Next() {
		rp, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rp)
	}
	return items, rows.Err()
}

// Create inserts a report and returns the stored record.
func (r *ReportPostgres) Create(ctx context.Context, rp *model.Report) (*model.Report, error) {
	const q = `
		INSERT INTO reports (reporter_id, reported_id, event_id, type, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reportColumns
	out, err := scanReport(r.db.QueryRowContext(ctx, q,
		rp.ReporterID,
		rp.ReportedID,
		rp.EventID,
		rp.Type,
		rp.Description,
	))
	if err != nil {
		return nil, repository.Classify(err)
	}
	return out, nil
}

// Exists reports whether the same reporter already filed this report type for the user and event.
func (r *ReportPostgres) Exists(ctx context.Context, rp *model.Report) (bool, error) {
	const q = `
		SELECT EXISTS (
		  SELECT 1 FROM reports
		  WHERE reporter_id = $1 AND reported_id = $2 AND event_id = $3 AND type = $4
		)
	`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, rp.ReporterID, rp.ReportedID, rp.EventID, rp.Type).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// FindByID fetches a single report.
func (r *ReportPostgres) FindByID(ctx context.Context, id string) (*model.Report, error) {
	const q = `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`
	return scanReport(r.db.QueryRowContext(ctx, q, id))
}

func reportWhere(f model.ReportFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.ReportedID != "" {
		add("reported_id = $%d", f.ReportedID)
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.From != nil {
		add("created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("created_at <= $%d", *f.To)
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns filtered reports newest first with a total count.
func (r *ReportPostgres) List(ctx context.Context, f model.ReportFilter, page repository.PageQuery) (*repository.PageResult[model.Report], error) {
	where, args := reportWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + reportColumns + ` FROM reports` + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, q, append(args, page.Limit, page.Offset)...)
	if err != nil {
		return nil, err
	}
	items, err := collectReports(rows)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Report]{Items: items, Total: total}, nil
}

// ListByReported returns reports against the user, optionally of one type, newest first.
func (r *ReportPostgres) ListByReported(ctx context.Context, userID, reportType string) ([]model.Report, error) {
	const q = `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE reported_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID, reportType)
	if err != nil {
		return nil, err
	}
	return collectReports(rows)
}

// CountByType counts reports against the user grouped by type.
func (r *ReportPostgres) CountByType(ctx context.Context, userID string) (map[string]int, error) {
	const q = `SELECT type, COUNT(*) FROM reports WHERE reported_id = $1 GROUP BY type`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{
		model.ReportNoShow:         0,
		model.ReportLate:           0,
		model.ReportLiedAboutEvent: 0,
	}
	for rows.Next() {
		var (
			t string
			n int
		)
		if err := rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		counts[t] = n
	}
	return counts, rows.Err()
}

// CountSince counts reports of one type against the user created at or after since.
func (r *ReportPostgres) CountSince(ctx context.Context, userID, reportType string, since time.Time) (int, error) {
	const q = `SELECT COUNT(*) FROM reports WHERE reported_id = $1 AND type = $2 AND created_at >= $3`
	var n int
	if err := r.db.QueryRowContext(ctx, q, userID, reportType, since).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ApplyPenalty records the penalty and updates the user's points and suspension together.
func (r *ReportPostgres) ApplyPenalty(ctx context.Context, p *model.Penalty, suspendUntil *time.Time) error {
	const qInsert = `
		INSERT INTO penalties (user_id, report_id, type, description, points_lost)
		VALUES ($1, $2, $3, $4, $5)
	`
	const qPoints = `UPDATE users SET points = GREATEST(points - $2, 0), updated_at = now() WHERE id = $1`
	const qSuspend = `
		UPDATE users
		SET suspended_until = GREATEST(COALESCE(suspended_until, $2), $2), updated_at = now()
		WHERE id = $1
	`
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, qInsert, p.UserID, nullIfEmpty(p.ReportID), p.Type, p.Description, p.PointsLost); err != nil {
			return err
		}
		if err := execOne(ctx, tx, qPoints, p.UserID, p.PointsLost); err != nil {
			return err
		}
		if suspendUntil != nil {
			return execOne(ctx, tx, qSuspend, p.UserID, *suspendUntil)
		}
		return nil
	})
}
