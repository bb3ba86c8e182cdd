package mocks

import (
	"context"

	"cinesport/internal/model"
	"cinesport/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) SyncGenres(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockMovieService) Populate(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockMovieService) List(ctx context.Context, limit, offset int) (*service.MovieListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MovieListResult), args.Error(1)
}

func (m *MockMovieService) Search(ctx context.Context, title string) (*service.MovieSearchResult, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MovieSearchResult), args.Error(1)
}

func (m *MockMovieService) Details(ctx context.Context, tmdbID int64) (*model.Movie, error) {
	args := m.Called(ctx, tmdbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) Suggest(ctx context.Context, userID string) ([]model.Movie, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Movie), args.Error(1)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, userID string, tmdbID int64) error {
	args := m.Called(ctx, userID, tmdbID)
	return args.Error(0)
}

func (m *MockFavoriteService) List(ctx context.Context, userID string) ([]model.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Favorite), args.Error(1)
}

func (m *MockFavoriteService) Remove(ctx context.Context, userID string, tmdbID int64) error {
	args := m.Called(ctx, userID, tmdbID)
	return args.Error(0)
}

type MockReactionService struct {
	mock.Mock
}

func (m *MockReactionService) Toggle(ctx context.Context, userID string, tmdbID int64, reactionType string) (*service.ReactionResult, error) {
	args := m.Called(ctx, userID, tmdbID, reactionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReactionResult), args.Error(1)
}

func (m *MockReactionService) Counts(ctx context.Context, tmdbID int64) (*model.ReactionCounts, error) {
	args := m.Called(ctx, tmdbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReactionCounts), args.Error(1)
}

func (m *MockReactionService) Mine(ctx context.Context, userID, reactionType string) ([]model.Reaction, error) {
	args := m.Called(ctx, userID, reactionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reaction), args.Error(1)
}

type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Send(ctx context.Context, senderID string, in service.RecommendInput) (*model.Recommendation, error) {
	args := m.Called(ctx, senderID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recommendation), args.Error(1)
}

func (m *MockRecommendationService) Received(ctx context.Context, userID string) ([]model.Recommendation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recommendation), args.Error(1)
}

func (m *MockRecommendationService) CountReceived(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRecommendationService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
