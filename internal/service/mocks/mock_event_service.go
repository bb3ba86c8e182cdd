package mocks

import (
	"context"

	"cinesport/internal/model"
	"cinesport/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Create(ctx context.Context, organizerID string, in service.EventInput) (*service.EventCreateResult, error) {
	args := m.Called(ctx, organizerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EventCreateResult), args.Error(1)
}

func (m *MockEventService) List(ctx context.Context, f model.EventFilter, page, limit int) (*service.EventListResult, error) {
	args := m.Called(ctx, f, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EventListResult), args.Error(1)
}

func (m *MockEventService) Get(ctx context.Context, eventID string) (*model.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, userID, eventID string, in service.EventUpdateInput) (*service.EventUpdateResult, error) {
	args := m.Called(ctx, userID, eventID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EventUpdateResult), args.Error(1)
}

func (m *MockEventService) Cancel(ctx context.Context, userID, eventID string) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func (m *MockEventService) Join(ctx context.Context, userID, eventID string) (*model.Participation, error) {
	args := m.Called(ctx, userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participation), args.Error(1)
}

func (m *MockEventService) Leave(ctx context.Context, userID, eventID string) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func (m *MockEventService) Participants(ctx context.Context, eventID string) ([]model.Participation, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Participation), args.Error(1)
}

func (m *MockEventService) Invite(ctx context.Context, organizerID, eventID, inviteeID string) (*model.Participation, error) {
	args := m.Called(ctx, organizerID, eventID, inviteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participation), args.Error(1)
}

func (m *MockEventService) Approve(ctx context.Context, organizerID, eventID, participationID string) error {
	args := m.Called(ctx, organizerID, eventID, participationID)
	return args.Error(0)
}

func (m *MockEventService) Reject(ctx context.Context, organizerID, eventID, participationID string) error {
	args := m.Called(ctx, organizerID, eventID, participationID)
	return args.Error(0)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Create(ctx context.Context, reporterID string, in service.ReportInput) (*model.Report, error) {
	args := m.Called(ctx, reporterID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportService) List(ctx context.Context, f model.ReportFilter, page, limit int) (*service.ReportListResult, error) {
	args := m.Called(ctx, f, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReportListResult), args.Error(1)
}

func (m *MockReportService) Get(ctx context.Context, id string) (*model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportService) ForUser(ctx context.Context, userID, reportType string) (*service.UserReports, error) {
	args := m.Called(ctx, userID, reportType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserReports), args.Error(1)
}
