package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"cinesport/internal/model"
	"cinesport/internal/repository"
	repoMocks "cinesport/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var reportNow = time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)

type reportMocks struct {
	reports *repoMocks.MockReportRepository
	events  *repoMocks.MockEventRepository
	parts   *repoMocks.MockParticipationRepository
}

func newReportService() (*reportService, reportMocks) {
	m := reportMocks{
		reports: new(repoMocks.MockReportRepository),
		events:  new(repoMocks.MockEventRepository),
		parts:   new(repoMocks.MockParticipationRepository),
	}
	svc := NewReportService(m.reports, m.events, m.parts, discardLogger()).(*reportService)
	svc.now = func() time.Time { return reportNow }
	return svc, m
}

func TestReportService_Create(t *testing.T) {
	ctx := context.Background()
	recent := &model.Event{ID: "e-1", StartsAt: reportNow.Add(-time.Hour)}
	in := ReportInput{ReportedID: "u-2", EventID: "e-1", Type: model.ReportNoShow}

	// eligible wires the checks that precede the insert.
	eligible := func(m reportMocks) {
		m.events.On("FindByID", ctx, "e-1").Return(recent, nil)
		m.parts.On("IsConfirmedMember", ctx, "e-1", "u-1").Return(true, nil)
		m.parts.On("IsConfirmedMember", ctx, "e-1", "u-2").Return(true, nil)
		m.reports.On("Exists", ctx, mock.Anything).Return(false, nil)
		m.reports.On("Create", ctx, mock.Anything).Return(&model.Report{ID: "r-1", ReportedID: "u-2", Type: model.ReportNoShow}, nil)
	}
	since := reportNow.Add(-PenaltyLookback)

	tests := []struct {
		name       string
		in         ReportInput
		setupMocks func(m reportMocks)
		wantErr    error
	}{
		{
			name: "below threshold applies nothing",
			in:   in,
			setupMocks: func(m reportMocks) {
				eligible(m)
				m.reports.On("CountSince", ctx, "u-2", model.ReportNoShow, since).Return(2, nil)
			},
		},
		{
			name: "third report costs points",
			in:   in,
			setupMocks: func(m reportMocks) {
				eligible(m)
				m.reports.On("CountSince", ctx, "u-2", model.ReportNoShow, since).Return(3, nil)
				m.reports.On("ApplyPenalty", ctx, mock.MatchedBy(func(p *model.Penalty) bool {
					return p.Type == model.PenaltyPointsLoss && p.PointsLost == 20 && p.ReportID == "r-1"
				}), (*time.Time)(nil)).Return(nil)
			},
		},
		{
			name: "fifth report suspends",
			in:   in,
			setupMocks: func(m reportMocks) {
				eligible(m)
				m.reports.On("CountSince", ctx, "u-2", model.ReportNoShow, since).Return(5, nil)
				m.reports.On("ApplyPenalty", ctx, mock.MatchedBy(func(p *model.Penalty) bool {
					return p.Type == model.PenaltyTemporarySuspension && p.PointsLost == 50
				}), mock.MatchedBy(func(until *time.Time) bool {
					return until != nil && until.Equal(reportNow.Add(SuspensionDuration))
				})).Return(nil)
			},
		},
		{
			name: "penalty failure is not returned",
			in:   in,
			setupMocks: func(m reportMocks) {
				eligible(m)
				m.reports.On("CountSince", ctx, "u-2", model.ReportNoShow, since).Return(0, errors.New("db fail"))
			},
		},
		{
			name:       "self report",
			in:         ReportInput{ReportedID: "u-1", EventID: "e-1", Type: model.ReportLate},
			setupMocks: func(reportMocks) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "unknown type",
			in:         ReportInput{ReportedID: "u-2", EventID: "e-1", Type: "rude"},
			setupMocks: func(reportMocks) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name: "missing event",
			in:   in,
			setupMocks: func(m reportMocks) {
				m.events.On("FindByID", ctx, "e-1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "window closed",
			in:   in,
			setupMocks: func(m reportMocks) {
				m.events.On("FindByID", ctx, "e-1").Return(&model.Event{ID: "e-1", StartsAt: reportNow.Add(-3 * time.Hour)}, nil)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "reporter not a participant",
			in:   in,
			setupMocks: func(m reportMocks) {
				m.events.On("FindByID", ctx, "e-1").Return(recent, nil)
				m.parts.On("IsConfirmedMember", ctx, "e-1", "u-1").Return(false, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name: "reported not a participant",
			in:   in,
			setupMocks: func(m reportMocks) {
				m.events.On("FindByID", ctx, "e-1").Return(recent, nil)
				m.parts.On("IsConfirmedMember", ctx, "e-1", "u-1").Return(true, nil)
				m.parts.On("IsConfirmedMember", ctx, "e-1", "u-2").Return(false, nil)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "duplicate",
			in:   in,
			setupMocks: func(m reportMocks) {
				m.events.On("FindByID", ctx, "e-1").Return(recent, nil)
				m.parts.On("IsConfirmedMember", ctx, "e-1", mock.Anything).Return(true, nil)
				m.reports.On("Exists", ctx, mock.Anything).Return(true, nil)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "duplicate detected on insert",
			in:   in,
			setupMocks: func(m reportMocks) {
				m.events.On("FindByID", ctx, "e-1").Return(recent, nil)
				m.parts.On("IsConfirmedMember", ctx, "e-1", mock.Anything).Return(true, nil)
				m.reports.On("Exists", ctx, mock.Anything).Return(false, nil)
				m.reports.On("Create", ctx, mock.Anything).Return(nil, repository.ErrConflict)
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReportService()
			tt.setupMocks(m)

			r, err := svc.Create(ctx, "u-1", tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "r-1", r.ID)
			}
			m.reports.AssertExpectations(t)
			m.events.AssertExpectations(t)
			m.parts.AssertExpectations(t)
		})
	}
}

func TestReportService_ListAndForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("list paginates", func(t *testing.T) {
		svc, m := newReportService()
		f := model.ReportFilter{ReportedID: "u-2"}
		m.reports.On("List", ctx, f, repository.PageQuery{Limit: 5, Offset: 5}).
			Return(&repository.PageResult[model.Report]{Items: []model.Report{{ID: "r-1"}}, Total: 11}, nil)

		res, err := svc.List(ctx, f, 2, 5)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Pages)
		assert.Equal(t, 2, res.CurrentPage)
	})

	t.Run("list rejects inverted range", func(t *testing.T) {
		svc, _ := newReportService()
		from, to := reportNow, reportNow.Add(-time.Hour)
		_, err := svc.List(ctx, model.ReportFilter{From: &from, To: &to}, 1, 10)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("for user with counts", func(t *testing.T) {
		svc, m := newReportService()
		m.reports.On("ListByReported", ctx, "u-2", "late").Return(nil, nil)
		m.reports.On("CountByType", ctx, "u-2").Return(map[string]int{"no_show": 0, "late": 2, "lied_about_event": 0}, nil)

		res, err := svc.ForUser(ctx, "u-2", "late")
		require.NoError(t, err)
		assert.Empty(t, res.Reports)
		assert.Equal(t, 2, res.Counts["late"])
	})

	t.Run("get missing", func(t *testing.T) {
		svc, m := newReportService()
		m.reports.On("FindByID", ctx, "r-9").Return(nil, sql.ErrNoRows)
		_, err := svc.Get(ctx, "r-9")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
