package mocks

import (
	"context"

	"cinesport/internal/tmdb"

	"github.com/stretchr/testify/mock"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Genres(ctx context.Context) ([]tmdb.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tmdb.Genre), args.Error(1)
}

func (m *MockAPI) Category(ctx context.Context, category string, page int) ([]tmdb.Movie, error) {
	args := m.Called(ctx, category, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tmdb.Movie), args.Error(1)
}

func (m *MockAPI) Search(ctx context.Context, query string) ([]tmdb.Movie, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tmdb.Movie), args.Error(1)
}
