package mocks

import (
	"context"

	"cinesport/internal/model"
	"cinesport/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, e *model.Event, reserved []string) (*model.Event, error) {
	args := m.Called(ctx, e, reserved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, f model.EventFilter, pq repository.PageQuery) (*repository.PageResult[model.EventSummary], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.EventSummary]), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, e *model.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) SetStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockEventRepository) ReplaceReservations(ctx context.Context, eventID, organizerID string, names []string) error {
	args := m.Called(ctx, eventID, organizerID, names)
	return args.Error(0)
}

func (m *MockEventRepository) Seats(ctx context.Context, eventID string) (int, int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Int(1), args.Error(2)
}

type MockParticipationRepository struct {
	mock.Mock
}

func (m *MockParticipationRepository) FindByID(ctx context.Context, id string) (*model.Participation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participation), args.Error(1)
}

func (m *MockParticipationRepository) FindMember(ctx context.Context, eventID, userID string) (*model.Participation, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participation), args.Error(1)
}

func (m *MockParticipationRepository) ListByEvent(ctx context.Context, eventID string) ([]model.Participation, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Participation), args.Error(1)
}

func (m *MockParticipationRepository) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *MockParticipationRepository) Create(ctx context.Context, p *model.Participation) (*model.Participation, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participation), args.Error(1)
}

func (m *MockParticipationRepository) CreateConfirmed(ctx context.Context, p *model.Participation, capacity int) (*model.Participation, error) {
	args := m.Called(ctx, p, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Participation), args.Error(1)
}

func (m *MockParticipationRepository) Confirm(ctx context.Context, id, eventID string, capacity int) error {
	args := m.Called(ctx, id, eventID, capacity)
	return args.Error(0)
}

func (m *MockParticipationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockParticipationRepository) IsConfirmedMember(ctx context.Context, eventID, userID string) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}
