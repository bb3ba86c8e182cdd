package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cinesport/internal/auth"
	"cinesport/internal/model"
	"cinesport/internal/repository"
	"cinesport/internal/storage"
)

// RegisterInput is the data accepted when creating an account.
type RegisterInput struct {
	Name      string     `json:"name"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	Location  string     `json:"location"`
	Country   string     `json:"country"`
}

// ProfileInput holds the editable profile fields. Empty or nil fields are left unchanged.
type ProfileInput struct {
	Name            string     `json:"name"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	Birthdate       *time.Time `json:"birthdate,omitempty"`
	Location        string     `json:"location"`
	Country         string     `json:"country"`
	FavoriteSportID *int64     `json:"favorite_sport_id,omitempty"`
	LocationID      *int64     `json:"location_id,omitempty"`
}

// TokenIssuer signs access tokens for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthService defines account registration, login and self-service profile use cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	// Login returns a signed token for valid credentials.
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, userID string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*model.User, error)
	// UploadAvatar stores the image and replaces the user's previous avatar object.
	UploadAvatar(ctx context.Context, userID string, r io.Reader, contentType string, size int64) error
}

type authService struct {
	users  repository.UserRepository
	tokens TokenIssuer
	store  storage.Storage
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, tokens TokenIssuer, store storage.Storage) AuthService {
	return &authService{users: users, tokens: tokens, store: store}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	if in.Name == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, invalid("name, username, email and password are required")
	}
	if !validEmail(in.Email) {
		return nil, invalid("invalid email")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Create(ctx, &model.User{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Birthdate:    in.Birthdate,
		Location:     in.Location,
		Country:      in.Country,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, conflict("email or username already in use")
		}
		return nil, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", invalid("email and password are required")
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", invalid("user not found")
		}
		return "", err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return "", unauthorized("invalid password")
	}
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*model.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, missing(err, "user not found")
	}
	return u, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*model.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, missing(err, "user not found")
	}

	if v := strings.TrimSpace(in.Name); v != "" {
		u.Name = v
	}
	if v := strings.TrimSpace(in.Username); v != "" {
		u.Username = v
	}
	if v := normalizeEmail(in.Email); v != "" {
		if !validEmail(v) {
			return nil, invalid("invalid email")
		}
		u.Email = v
	}
	if in.Birthdate != nil {
		u.Birthdate = in.Birthdate
	}
	if in.Location != "" {
		u.Location = in.Location
	}
	if in.Country != "" {
		u.Country = in.Country
	}
	if in.FavoriteSportID != nil {
		u.FavoriteSportID = in.FavoriteSportID
	}
	if in.LocationID != nil {
		u.LocationID = in.LocationID
	}

	out, err := s.users.Update(ctx, u)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return nil, conflict("email or username already in use")
		case errors.Is(err, repository.ErrInUse):
			return nil, invalid("unknown sport or location")
		}
		return nil, missing(err, "user not found")
	}
	return out, nil
}

func (s *authService) UploadAvatar(ctx context.Context, userID string, r io.Reader, contentType string, size int64) error {
	if r == nil {
		return invalid("file is required")
	}
	ext, err := storage.ImageExt(contentType)
	if err != nil {
		return invalid("avatar must be a jpeg, png or webp image")
	}
	if size > storage.MaxImageSize {
		return invalid("avatar is too large")
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return missing(err, "user not found")
	}

	key := storage.AvatarKey(userID, ext)
	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"user-id": userID},
	}); err != nil {
		return fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.users.UpdateAvatar(ctx, userID, key); err != nil {
		if key != u.AvatarKey {
			if delErr := s.store.Delete(ctx, key); delErr != nil {
				return fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return fmt.Errorf("db save failed: %w", err)
	}

	if u.AvatarKey != "" && u.AvatarKey != key {
		if err := s.store.Delete(ctx, u.AvatarKey); err != nil {
			return fmt.Errorf("delete previous avatar: %w", err)
		}
	}
	return nil
}
