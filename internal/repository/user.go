package repository

import (
	"context"

	"cinesport/internal/model"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	// Create inserts a user. Duplicate email or username yields ErrConflict.
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Update writes the editable profile fields. Duplicate email or username yields ErrConflict.
	Update(ctx context.Context, u *model.User) (*model.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateAvatar(ctx context.Context, id, key string) error

	// Search matches name or username case-insensitively.
	Search(ctx context.Context, query string, limit int) ([]model.UserSummary, error)
	Profile(ctx context.Context, id string) (*model.UserProfile, error)
	Stats(ctx context.Context, id string) (*model.UserStats, error)
}
