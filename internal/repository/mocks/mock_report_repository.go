package mocks

import (
	"context"
	"time"

	"cinesport/internal/model"
	"cinesport/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, r *model.Report) (*model.Report, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportRepository) Exists(ctx context.Context, r *model.Report) (bool, error) {
	args := m.Called(ctx, r)
	return args.Bool(0), args.Error(1)
}

func (m *MockReportRepository) FindByID(ctx context.Context, id string) (*model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportRepository) List(ctx context.Context, f model.ReportFilter, pq repository.PageQuery) (*repository.PageResult[model.Report], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Report]), args.Error(1)
}

func (m *MockReportRepository) ListByReported(ctx context.Context, userID, reportType string) ([]model.Report, error) {
	args := m.Called(ctx, userID, reportType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *MockReportRepository) CountByType(ctx context.Context, userID string) (map[string]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockReportRepository) CountSince(ctx context.Context, userID, reportType string, since time.Time) (int, error) {
	args := m.Called(ctx, userID, reportType, since)
	return args.Int(0), args.Error(1)
}

func (m *MockReportRepository) ApplyPenalty(ctx context.Context, p *model.Penalty, suspendUntil *time.Time) error {
	args := m.Called(ctx, p, suspendUntil)
	return args.Error(0)
}
