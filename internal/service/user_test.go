package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"cinesport/internal/model"
	repoMocks "cinesport/internal/repository/mocks"
	storeMocks "cinesport/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Search(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		query      string
		setupMocks func(m *repoMocks.MockUserRepository)
		wantLen    int
		wantErr    error
	}{
		{
			name:  "matches",
			query: " an ",
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("Search", ctx, "an", userSearchLimit).Return([]model.UserSummary{{ID: "u-1"}, {ID: "u-2"}}, nil)
			},
			wantLen: 2,
		},
		{
			name:       "missing query",
			query:      "  ",
			setupMocks: func(m *repoMocks.MockUserRepository) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name:  "no match",
			query: "zzz",
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("Search", ctx, "zzz", userSearchLimit).Return([]model.UserSummary{}, nil)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mUsers := new(repoMocks.MockUserRepository)
			tt.setupMocks(mUsers)
			svc := NewUserService(mUsers, nil)

			res, err := svc.Search(ctx, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Len(t, res, tt.wantLen)
			}
			mUsers.AssertExpectations(t)
		})
	}
}

func TestUserService_ProfileAndStats(t *testing.T) {
	ctx := context.Background()

	t.Run("profile not found", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("Profile", ctx, "u-9").Return(nil, sql.ErrNoRows)
		_, err := NewUserService(mUsers, nil).Profile(ctx, "u-9")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stats with no sports returns empty list", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByID", ctx, "u-1").Return(&model.User{ID: "u-1"}, nil)
		mUsers.On("Stats", ctx, "u-1").Return(&model.UserStats{EventsOrganized: 2}, nil)

		st, err := NewUserService(mUsers, nil).Stats(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, 2, st.EventsOrganized)
		assert.NotNil(t, st.BySport)
		assert.Nil(t, st.FavoriteSport)
	})

	t.Run("stats of unknown user", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByID", ctx, "u-9").Return(nil, sql.ErrNoRows)
		_, err := NewUserService(mUsers, nil).Stats(ctx, "u-9")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_AvatarURL(t *testing.T) {
	ctx := context.Background()

	t.Run("presigns the stored key", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mStore := new(storeMocks.MockStorage)
		mUsers.On("FindByID", ctx, "u-1").Return(&model.User{ID: "u-1", AvatarKey: "avatars/u-1.png"}, nil)
		mStore.On("PresignGet", ctx, "avatars/u-1.png", avatarURLExpiry).Return("http://minio/avatars/u-1.png?sig", nil)

		url, err := NewUserService(mUsers, mStore).AvatarURL(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, "http://minio/avatars/u-1.png?sig", url)
	})

	t.Run("no avatar", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByID", ctx, "u-1").Return(&model.User{ID: "u-1"}, nil)
		_, err := NewUserService(mUsers, nil).AvatarURL(ctx, "u-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("presign failure", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mStore := new(storeMocks.MockStorage)
		mUsers.On("FindByID", ctx, "u-1").Return(&model.User{ID: "u-1", AvatarKey: "k"}, nil)
		mStore.On("PresignGet", ctx, "k", avatarURLExpiry).Return("", errors.New("boom"))
		_, err := NewUserService(mUsers, mStore).AvatarURL(ctx, "u-1")
		assert.EqualError(t, err, "presign avatar: boom")
	})
}
