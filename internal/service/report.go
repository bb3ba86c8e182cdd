package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"cinesport/internal/model"
	"cinesport/internal/repository"
)

// Reporting and penalty rules.
const (
	ReportWindow        = 2 * time.Hour
	PenaltyLookback     = 30 * 24 * time.Hour
	PointsLossThreshold = 3
	SuspensionThreshold = 5
	PointsLossPenalty   = 20
	SuspensionPenalty   = 50
	SuspensionDuration  = 7 * 24 * time.Hour
)

// ReportInput is a complaint about another participant of an event.
type ReportInput struct {
	ReportedID  string `json:"reported_id"`
	EventID     string `json:"event_id"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ReportListResult is one page of reports.
type ReportListResult struct {
	Reports     []model.Report `json:"reports"`
	Total       int            `json:"total"`
	Pages       int            `json:"pages"`
	CurrentPage int            `json:"current_page"`
}

// UserReports lists the reports against a user with a count per type.
type UserReports struct {
	Reports []model.Report `json:"reports"`
	Counts  map[string]int `json:"counts"`
}

// ReportService defines participant reports and the penalties they trigger.
type ReportService interface {
	// Create files a report and escalates penalties of the reported user.
	Create(ctx context.Context, reporterID string, in ReportInput) (*model.Report, error)
	List(ctx context.Context, f model.ReportFilter, page, limit int) (*ReportListResult, error)
	Get(ctx context.Context, id string) (*model.Report, error)
	ForUser(ctx context.Context, userID, reportType string) (*UserReports, error)
}

type reportService struct {
	reports        repository.ReportRepository
	events         repository.EventRepository
	participations repository.ParticipationRepository
	log            logrus.FieldLogger
	now            func() time.Time
}

// NewReportService constructs a new ReportService.
func NewReportService(reports repository.ReportRepository, events repository.EventRepository, participations repository.ParticipationRepository, log logrus.FieldLogger) ReportService {
	return &reportService{
		reports:        reports,
		events:         events,
		participations: participations,
		log:            log.WithField("component", "reports"),
		now:            time.Now,
	}
}

func (s *reportService) Create(ctx context.Context, reporterID string, in ReportInput) (*model.Report, error) {
	in.Type = strings.TrimSpace(in.Type)
	switch {
	case in.ReportedID == "" || in.EventID == "" || in.Type == "":
		return nil, invalid("reported_id, event_id and type are required")
	case !model.ValidReportType(in.Type):
		return nil, invalid("type must be no_show, late or lied_about_event")
	case in.ReportedID == reporterID:
		return nil, invalid("you cannot report yourself")
	}

	e, err := s.events.FindByID(ctx, in.EventID)
	if err != nil {
		return nil, missing(err, "event not found")
	}
	if s.now().After(e.StartsAt.Add(ReportWindow)) {
		return nil, invalid("reports are accepted only until 2 hours after the event starts")
	}

	ok, err := s.participations.IsConfirmedMember(ctx, in.EventID, reporterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, forbidden("only confirmed participants can report")
	}
	ok, err = s.participations.IsConfirmedMember(ctx, in.EventID, in.ReportedID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalid("reported user is not a confirmed participant")
	}

	r := &model.Report{
		ReporterID:  reporterID,
		ReportedID:  in.ReportedID,
		EventID:     in.EventID,
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
	}
	exists, err := s.reports.Exists(ctx, r)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, invalid("you already reported this user for this event")
	}
	out, err := s.reports.Create(ctx, r)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, invalid("you already reported this user for this event")
		}
		return nil, err
	}

	if err := s.escalate(ctx, out); err != nil {
		s.log.WithFields(logrus.Fields{
			"event":     "penalty_failed",
			"report_id": out.ID,
			"user_id":   out.ReportedID,
		}).WithError(err).Error("penalty escalation failed")
	}
	return out, nil
}

// escalate penalizes the reported user once enough reports of the same type
// accumulate within the lookback window.
func (s *reportService) escalate(ctx context.Context, r *model.Report) error {
	now := s.now()
	n, err := s.reports.CountSince(ctx, r.ReportedID, r.Type, now.Add(-PenaltyLookback))
	if err != nil {
		return fmt.Errorf("count reports: %w", err)
	}

	p := &model.Penalty{UserID: r.ReportedID, ReportID: r.ID}
	var until *time.Time
	switch {
	case n >= SuspensionThreshold:
		t := now.Add(SuspensionDuration)
		until = &t
		p.Type = model.PenaltyTemporarySuspension
		p.PointsLost = SuspensionPenalty
		p.Description = fmt.Sprintf("%d %s reports in 30 days: suspended for 7 days", n, r.Type)
	case n >= PointsLossThreshold:
		p.Type = model.PenaltyPointsLoss
		p.PointsLost = PointsLossPenalty
		p.Description = fmt.Sprintf("%d %s reports in 30 days", n, r.Type)
	default:
		return nil
	}

	if err := s.reports.ApplyPenalty(ctx, p, until); err != nil {
		return fmt.Errorf("apply penalty: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"event":       "penalty_applied",
		"user_id":     p.UserID,
		"type":        p.Type,
		"points_lost": p.PointsLost,
	}).Info("penalty applied")
	return nil
}

func (s *reportService) List(ctx context.Context, f model.ReportFilter, page, limit int) (*ReportListResult, error) {
	if page <= 0 {
		page = 1
	}
	limit, _ = clampPage(limit, 0)
	if f.Type != "" && !model.ValidReportType(f.Type) {
		return nil, invalid("type must be no_show, late or lied_about_event")
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return nil, invalid("from must not be after to")
	}

	res, err := s.reports.List(ctx, f, repository.PageQuery{Limit: limit, Offset: (page - 1) * limit})
	if err != nil {
		return nil, err
	}
	out := &ReportListResult{Reports: res.Items, Total: res.Total, Pages: pages(res.Total, limit), CurrentPage: page}
	if out.Reports == nil {
		out.Reports = []model.Report{}
	}
	return out, nil
}

func (s *reportService) Get(ctx context.Context, id string) (*model.Report, error) {
	r, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, missing(err, "report not found")
	}
	return r, nil
}

func (s *reportService) ForUser(ctx context.Context, userID, reportType string) (*UserReports, error) {
	if reportType != "" && !model.ValidReportType(reportType) {
		return nil, invalid("type must be no_show, late or lied_about_event")
	}
	reports, err := s.reports.ListByReported(ctx, userID, reportType)
	if err != nil {
		return nil, err
	}
	counts, err := s.reports.CountByType(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []model.Report{}
	}
	return &UserReports{Reports: reports, Counts: counts}, nil
}
