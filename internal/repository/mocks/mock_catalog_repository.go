package mocks

import (
	"context"

	"cinesport/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockSportRepository struct {
	mock.Mock
}

func (m *MockSportRepository) List(ctx context.Context) ([]model.Sport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sport), args.Error(1)
}

func (m *MockSportRepository) FindByID(ctx context.Context, id int64) (*model.Sport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sport), args.Error(1)
}

func (m *MockSportRepository) Create(ctx context.Context, s *model.Sport) (*model.Sport, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sport), args.Error(1)
}

func (m *MockSportRepository) Update(ctx context.Context, s *model.Sport) (*model.Sport, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sport), args.Error(1)
}

func (m *MockSportRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) List(ctx context.Context) ([]model.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Location), args.Error(1)
}

func (m *MockLocationRepository) Create(ctx context.Context, l *model.Location) (*model.Location, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockLocationRepository) Update(ctx context.Context, l *model.Location) (*model.Location, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
