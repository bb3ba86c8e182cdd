package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinesport/internal/model"
	"cinesport/internal/repository"
	"cinesport/internal/storage"
)

const (
	userSearchLimit = 20
	avatarURLExpiry = 15 * time.Minute
)

// UserService defines the public, read-only views of users.
type UserService interface {
	Search(ctx context.Context, query string) ([]model.UserSummary, error)
	Profile(ctx context.Context, userID string) (*model.UserProfile, error)
	Stats(ctx context.Context, userID string) (*model.UserStats, error)
	// AvatarURL returns a presigned download URL of the user's avatar.
	AvatarURL(ctx context.Context, userID string) (string, error)
}

type userService struct {
	users repository.UserRepository
	store storage.Storage
}

// NewUserService constructs a new UserService.
func NewUserService(users repository.UserRepository, store storage.Storage) UserService {
	return &userService{users: users, store: store}
}

func (s *userService) Search(ctx context.Context, query string) ([]model.UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalid("query is required")
	}
	users, err := s.users.Search(ctx, query, userSearchLimit)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, notFound("no users found")
	}
	return users, nil
}

func (s *userService) Profile(ctx context.Context, userID string) (*model.UserProfile, error) {
	p, err := s.users.Profile(ctx, userID)
	if err != nil {
		return nil, missing(err, "user not found")
	}
	return p, nil
}

func (s *userService) Stats(ctx context.Context, userID string) (*model.UserStats, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, missing(err, "user not found")
	}
	st, err := s.users.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	if st.BySport == nil {
		st.BySport = []model.SportCount{}
	}
	return st, nil
}

func (s *userService) AvatarURL(ctx context.Context, userID string) (string, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", missing(err, "user not found")
	}
	if u.AvatarKey == "" {
		return "", notFound("user has no avatar")
	}
	url, err := s.store.PresignGet(ctx, u.AvatarKey, avatarURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign avatar: %w", err)
	}
	return url, nil
}
