package repository

import (
	"context"
	"time"

	"cinesport/internal/model"
)

// ReportRepository defines data access for reports and penalties.
type ReportRepository interface {
	// Create inserts a report. A duplicate (reporter, reported, event, type) yields ErrConflict.
	Create(ctx context.Context, r *model.Report) (*model.Report, error)
	Exists(ctx context.Context, r *model.Report) (bool, error)
	FindByID(ctx context.Context, id string) (*model.Report, error)
	List(ctx context.Context, f model.ReportFilter, pq PageQuery) (*PageResult[model.Report], error)
	ListByReported(ctx context.Context, userID, reportType string) ([]model.Report, error)
	CountByType(ctx context.Context, userID string) (map[string]int, error)
	CountSince(ctx context.Context, userID, reportType string, since time.Time) (int, error)
	// ApplyPenalty records the penalty, deducts its points (floored at zero)
	// and extends the suspension when suspendUntil is set, atomically.
	ApplyPenalty(ctx context.Context, p *model.Penalty, suspendUntil *time.Time) error
}
