package mocks

import (
	"context"

	"cinesport/internal/model"
	"cinesport/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) UpsertGenres(ctx context.Context, genres []model.Genre) error {
	args := m.Called(ctx, genres)
	return args.Error(0)
}

func (m *MockMovieRepository) FindOrCreate(ctx context.Context, mv *model.Movie, genreTMDBIDs []int64) (*model.Movie, bool, error) {
	args := m.Called(ctx, mv, genreTMDBIDs)
	if f, ok := args.Get(0).(func(context.Context, *model.Movie, []int64) (*model.Movie, bool, error)); ok {
		return f(ctx, mv, genreTMDBIDs)
	}
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Movie), args.Bool(1), args.Error(2)
}

func (m *MockMovieRepository) FindByTMDBID(ctx context.Context, tmdbID int64) (*model.Movie, error) {
	args := m.Called(ctx, tmdbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovieRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Movie], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Movie]), args.Error(1)
}

func (m *MockMovieRepository) SearchComplete(ctx context.Context, title string, limit int) ([]model.Movie, error) {
	args := m.Called(ctx, title, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Movie), args.Error(1)
}

func (m *MockMovieRepository) All(ctx context.Context) ([]model.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Movie), args.Error(1)
}

func (m *MockMovieRepository) Interactions(ctx context.Context) ([]model.Interaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Interaction), args.Error(1)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID string, movieID int64) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID string, movieID int64) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]model.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Favorite), args.Error(1)
}

type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) Find(ctx context.Context, userID string, movieID int64) (*model.Reaction, error) {
	args := m.Called(ctx, userID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reaction), args.Error(1)
}

func (m *MockReactionRepository) Create(ctx context.Context, r *model.Reaction) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReactionRepository) UpdateType(ctx context.Context, userID string, movieID int64, reactionType string) error {
	args := m.Called(ctx, userID, movieID, reactionType)
	return args.Error(0)
}

func (m *MockReactionRepository) Delete(ctx context.Context, userID string, movieID int64) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *MockReactionRepository) Counts(ctx context.Context, movieID int64) (*model.ReactionCounts, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReactionCounts), args.Error(1)
}

func (m *MockReactionRepository) ListByUser(ctx context.Context, userID, reactionType string) ([]model.Reaction, error) {
	args := m.Called(ctx, userID, reactionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reaction), args.Error(1)
}

type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Create(ctx context.Context, r *model.Recommendation) (*model.Recommendation, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) FindByID(ctx context.Context, id string) (*model.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) ListReceived(ctx context.Context, receiverID string) ([]model.Recommendation, error) {
	args := m.Called(ctx, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) CountReceived(ctx context.Context, receiverID string) (int, error) {
	args := m.Called(ctx, receiverID)
	return args.Int(0), args.Error(1)
}

func (m *MockRecommendationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
