package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"cinesport/internal/cache"
	cacheMocks "cinesport/internal/cache/mocks"
	"cinesport/internal/model"
	"cinesport/internal/repository"
	repoMocks "cinesport/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var matrix = &model.Movie{ID: 10, TMDBID: 603, Title: "The Matrix"}

func TestFavoriteService(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		run        func(svc FavoriteService) error
		setupMocks func(mMovies *repoMocks.MockMovieRepository, mFavs *repoMocks.MockFavoriteRepository)
		wantErr    error
		wantMsg    string
		forgets    bool
	}{
		{
			name:    "add",
			forgets: true,
			run:  func(svc FavoriteService) error { return svc.Add(ctx, "u-1", 603) },
			setupMocks: func(mMovies *repoMocks.MockMovieRepository, mFavs *repoMocks.MockFavoriteRepository) {
				mMovies.On("FindByTMDBID", ctx, int64(603)).Return(matrix, nil)
				mFavs.On("Add", ctx, "u-1", int64(10)).Return(nil)
			},
		},
		{
			name: "add unknown movie",
			run:  func(svc FavoriteService) error { return svc.Add(ctx, "u-1", 1) },
			setupMocks: func(mMovies *repoMocks.MockMovieRepository, mFavs *repoMocks.MockFavoriteRepository) {
				mMovies.On("FindByTMDBID", ctx, int64(1)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrInvalidInput,
			wantMsg: "movie not found",
		},
		{
			name: "add twice",
			run:  func(svc FavoriteService) error { return svc.Add(ctx, "u-1", 603) },
			setupMocks: func(mMovies *repoMocks.MockMovieRepository, mFavs *repoMocks.MockFavoriteRepository) {
				mMovies.On("FindByTMDBID", ctx, int64(603)).Return(matrix, nil)
				mFavs.On("Add", ctx, "u-1", int64(10)).Return(repository.ErrConflict)
			},
			wantErr: ErrInvalidInput,
			wantMsg: "movie is already a favorite",
		},
		{
			name:    "remove",
			forgets: true,
			run:     func(svc FavoriteService) error { return svc.Remove(ctx, "u-1", 603) },
			setupMocks: func(mMovies *repoMocks.MockMovieRepository, mFavs *repoMocks.MockFavoriteRepository) {
				mMovies.On("FindByTMDBID", ctx, int64(603)).Return(matrix, nil)
				mFavs.On("Remove", ctx, "u-1", int64(10)).Return(true, nil)
			},
		},
		{
			name: "remove non favorite",
			run:  func(svc FavoriteService) error { return svc.Remove(ctx, "u-1", 603) },
			setupMocks: func(mMovies *repoMocks.MockMovieRepository, mFavs *repoMocks.MockFavoriteRepository) {
				mMovies.On("FindByTMDBID", ctx, int64(603)).Return(matrix, nil)
				mFavs.On("Remove", ctx, "u-1", int64(10)).Return(false, nil)
			},
			wantErr: ErrInvalidInput,
			wantMsg: "movie is not a favorite",
		},
		{
			name:       "missing movie id",
			run:        func(svc FavoriteService) error { return svc.Remove(ctx, "u-1", 0) },
			setupMocks: func(*repoMocks.MockMovieRepository, *repoMocks.MockFavoriteRepository) {},
			wantErr:    ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mMovies := new(repoMocks.MockMovieRepository)
			mFavs := new(repoMocks.MockFavoriteRepository)
			mCache := new(cacheMocks.MockCache)
			tt.setupMocks(mMovies, mFavs)
			if tt.forgets {
				mCache.On("Delete", ctx, []string{cache.SuggestionsKey("u-1")}).Return(nil).Once()
			}

			err := tt.run(NewFavoriteService(mMovies, mFavs, mCache, discardLogger()))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
			} else {
				assert.NoError(t, err)
			}
			mMovies.AssertExpectations(t)
			mFavs.AssertExpectations(t)
			mCache.AssertExpectations(t)
		})
	}
}

func TestFavoriteService_InvalidationFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	mMovies := new(repoMocks.MockMovieRepository)
	mFavs := new(repoMocks.MockFavoriteRepository)
	mCache := new(cacheMocks.MockCache)
	mMovies.On("FindByTMDBID", ctx, int64(603)).Return(matrix, nil)
	mFavs.On("Add", ctx, "u-1", int64(10)).Return(nil)
	mCache.On("Delete", ctx, []string{cache.SuggestionsKey("u-1")}).Return(errors.New("redis down"))

	err := NewFavoriteService(mMovies, mFavs, mCache, discardLogger()).Add(ctx, "u-1", 603)
	assert.NoError(t, err)
	mCache.AssertExpectations(t)
}

func TestReactionService_Toggle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		typ        string
		setupMocks func(mReacts *repoMocks.MockReactionRepository)
		want       *ReactionResult
		wantErr    error
	}{
		{
			name: "first reaction is added",
			typ:  "like",
			setupMocks: func(mReacts *repoMocks.MockReactionRepository) {
				mReacts.On("Find", ctx, "u-1", int64(10)).Return(nil, sql.ErrNoRows)
				mReacts.On("Create", ctx, &model.Reaction{UserID: "u-1", MovieID: 10, Type: "like"}).Return(nil)
			},
			want: &ReactionResult{Action: ReactionAdded, Type: "like"},
		},
		{
			name: "same reaction again removes it",
			typ:  "Like",
			setupMocks: func(mReacts *repoMocks.MockReactionRepository) {
				mReacts.On("Find", ctx, "u-1", int64(10)).Return(&model.Reaction{Type: "like"}, nil)
				mReacts.On("Delete", ctx, "u-1", int64(10)).Return(nil)
			},
			want: &ReactionResult{Action: ReactionRemoved},
		},
		{
			name: "other reaction switches",
			typ:  "dislike",
			setupMocks: func(mReacts *repoMocks.MockReactionRepository) {
				mReacts.On("Find", ctx, "u-1", int64(10)).Return(&model.Reaction{Type: "like"}, nil)
				mReacts.On("UpdateType", ctx, "u-1", int64(10), "dislike").Return(nil)
			},
			want: &ReactionResult{Action: ReactionSwitched, Type: "dislike"},
		},
		{
			name: "concurrent insert",
			typ:  "like",
			setupMocks: func(mReacts *repoMocks.MockReactionRepository) {
				mReacts.On("Find", ctx, "u-1", int64(10)).Return(nil, sql.ErrNoRows)
				mReacts.On("Create", ctx, mock.Anything).Return(repository.ErrConflict)
			},
			wantErr: ErrConflict,
		},
		{
			name:       "invalid type",
			typ:        "love",
			setupMocks: func(*repoMocks.MockReactionRepository) {},
			wantErr:    ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mMovies := new(repoMocks.MockMovieRepository)
			mReacts := new(repoMocks.MockReactionRepository)
			mMovies.On("FindByTMDBID", ctx, int64(603)).Return(matrix, nil).Maybe()
			mCache := new(cacheMocks.MockCache)
			tt.setupMocks(mReacts)
			if tt.wantErr == nil {
				mCache.On("Delete", ctx, []string{cache.SuggestionsKey("u-1")}).Return(nil).Once()
			}

			got, err := NewReactionService(mMovies, mReacts, mCache, discardLogger()).Toggle(ctx, "u-1", 603, tt.typ)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mReacts.AssertExpectations(t)
			mCache.AssertExpectations(t)
		})
	}
}

func TestReactionService_CountsAndMine(t *testing.T) {
	ctx := context.Background()
	mMovies := new(repoMocks.MockMovieRepository)
	mReacts := new(repoMocks.MockReactionRepository)
	mMovies.On("FindByTMDBID", ctx, int64(603)).Return(matrix, nil)
	mMovies.On("FindByTMDBID", ctx, int64(1)).Return(nil, sql.ErrNoRows)
	mReacts.On("Counts", ctx, int64(10)).Return(&model.ReactionCounts{Likes: 3, Dislikes: 1}, nil)
	mReacts.On("ListByUser", ctx, "u-1", "dislike").Return(nil, nil)
	svc := NewReactionService(mMovies, mReacts, cache.Noop{}, discardLogger())

	c, err := svc.Counts(ctx, 603)
	require.NoError(t, err)
	assert.Equal(t, &model.ReactionCounts{Likes: 3, Dislikes: 1}, c)

	_, err = svc.Counts(ctx, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	mine, err := svc.Mine(ctx, "u-1", "dislike")
	require.NoError(t, err)
	assert.NotNil(t, mine)
	assert.Empty(t, mine)
}

func TestRecommendationService_Send(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         RecommendInput
		setupMocks func(mMovies *repoMocks.MockMovieRepository, mUsers *repoMocks.MockUserRepository, mRecs *repoMocks.MockRecommendationRepository)
		wantErr    error
	}{
		{
			name: "created with movie",
			in:   RecommendInput{ReceiverID: "u-2", TMDBID: 603, Message: " watch it "},
			setupMocks: func(mMovies *repoMocks.MockMovieRepository, mUsers *repoMocks.MockUserRepository, mRecs *repoMocks.MockRecommendationRepository) {
				mMovies.On("FindByTMDBID", ctx, int64(603)).Return(matrix, nil)
				mUsers.On("FindByID", ctx, "u-2").Return(&model.User{ID: "u-2"}, nil)
				mRecs.On("Create", ctx, &model.Recommendation{SenderID: "u-1", ReceiverID: "u-2", MovieID: 10, Message: "watch it"}).
					Return(&model.Recommendation{ID: "r-1", ReceiverID: "u-2", MovieID: 10}, nil)
			},
		},
		{
			name: "unknown movie",
			in:   RecommendInput{ReceiverID: "u-2", TMDBID: 1},
			setupMocks: func(mMovies *repoMocks.MockMovieRepository, mUsers *repoMocks.MockUserRepository, mRecs *repoMocks.MockRecommendationRepository) {
				mMovies.On("FindByTMDBID", ctx, int64(1)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown receiver",
			in:   RecommendInput{ReceiverID: "u-9", TMDBID: 603},
			setupMocks: func(mMovies *repoMocks.MockMovieRepository, mUsers *repoMocks.MockUserRepository, mRecs *repoMocks.MockRecommendationRepository) {
				mMovies.On("FindByTMDBID", ctx, int64(603)).Return(matrix, nil)
				mUsers.On("FindByID", ctx, "u-9").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:       "missing receiver",
			in:         RecommendInput{TMDBID: 603},
			setupMocks: func(*repoMocks.MockMovieRepository, *repoMocks.MockUserRepository, *repoMocks.MockRecommendationRepository) {},
			wantErr:    ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mMovies := new(repoMocks.MockMovieRepository)
			mUsers := new(repoMocks.MockUserRepository)
			mRecs := new(repoMocks.MockRecommendationRepository)
			tt.setupMocks(mMovies, mUsers, mRecs)

			rec, err := NewRecommendationService(mMovies, mUsers, mRecs).Send(ctx, "u-1", tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, matrix, rec.Movie)
			}
			mMovies.AssertExpectations(t)
			mUsers.AssertExpectations(t)
			mRecs.AssertExpectations(t)
		})
	}
}

func TestRecommendationService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		userID     string
		setupMocks func(mRecs *repoMocks.MockRecommendationRepository)
		wantErr    error
	}{
		{
			name:   "receiver deletes",
			userID: "u-2",
			setupMocks: func(mRecs *repoMocks.MockRecommendationRepository) {
				mRecs.On("FindByID", ctx, "r-1").Return(&model.Recommendation{ID: "r-1", ReceiverID: "u-2"}, nil)
				mRecs.On("Delete", ctx, "r-1").Return(nil)
			},
		},
		{
			name:   "sender cannot delete",
			userID: "u-1",
			setupMocks: func(mRecs *repoMocks.MockRecommendationRepository) {
				mRecs.On("FindByID", ctx, "r-1").Return(&model.Recommendation{ID: "r-1", SenderID: "u-1", ReceiverID: "u-2"}, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:   "missing",
			userID: "u-2",
			setupMocks: func(mRecs *repoMocks.MockRecommendationRepository) {
				mRecs.On("FindByID", ctx, "r-1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRecs := new(repoMocks.MockRecommendationRepository)
			tt.setupMocks(mRecs)

			err := NewRecommendationService(nil, nil, mRecs).Delete(ctx, tt.userID, "r-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mRecs.AssertExpectations(t)
		})
	}
}

func TestSuggestionService_Suggest(t *testing.T) {
	ctx := context.Background()
	key := cache.SuggestionsKey("u-1")
	movies := []model.Movie{
		{ID: 3, Overview: "Two friends fall in love during a summer in Paris", Genres: []string{"Romance"}},
		{ID: 4, Overview: "A detective hunts a killer in a rainy city", Genres: []string{"Crime"}},
		{ID: 5, Overview: "A romantic comedy about a wedding in Paris", Genres: []string{"Romance", "Comedy"}},
	}
	interactions := []model.Interaction{
		{UserID: "u-1", MovieID: 3, Weight: 1},
		{UserID: "u-2", MovieID: 3, Weight: 1},
		{UserID: "u-2", MovieID: 5, Weight: 2},
		{UserID: "u-2", MovieID: 4, Weight: -1},
	}

	t.Run("computes and caches", func(t *testing.T) {
		mMovies := new(repoMocks.MockMovieRepository)
		mCache := new(cacheMocks.MockCache)
		mCache.On("Get", ctx, key, mock.Anything).Return(false, nil)
		mMovies.On("All", ctx).Return(movies, nil)
		mMovies.On("Interactions", ctx).Return(interactions, nil)
		mCache.On("Set", ctx, key, mock.Anything, SuggestionsTTL).Return(nil)

		got, err := NewSuggestionService(mMovies, mCache, 0, discardLogger()).Suggest(ctx, "u-1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(5), got[0].ID)
		mCache.AssertExpectations(t)
	})

	t.Run("served from cache", func(t *testing.T) {
		mMovies := new(repoMocks.MockMovieRepository)
		mCache := new(cacheMocks.MockCache)
		mCache.On("Get", ctx, key, mock.Anything).Return(true, nil, func(dst any) {
			*dst.(*[]model.Movie) = []model.Movie{{ID: 42}}
		})

		got, err := NewSuggestionService(mMovies, mCache, 5, discardLogger()).Suggest(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, []model.Movie{{ID: 42}}, got)
		mMovies.AssertNotCalled(t, "All", mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		mMovies := new(repoMocks.MockMovieRepository)
		mMovies.On("All", ctx).Return(nil, errors.New("db fail"))

		_, err := NewSuggestionService(mMovies, cache.Noop{}, 5, discardLogger()).Suggest(ctx, "u-1")
		assert.EqualError(t, err, "db fail")
	})
}
