package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cinesport/internal/auth"
	"cinesport/internal/mail"
	"cinesport/internal/repository"
)

// TemporaryPasswordLength is the length of passwords issued by ForgotPassword.
const TemporaryPasswordLength = 8

// PasswordService defines password change and recovery use cases.
type PasswordService interface {
	ChangePassword(ctx context.Context, userID, current, next, confirm string) error
	// ForgotPassword replaces the password with a random temporary one and mails it to the user.
	ForgotPassword(ctx context.Context, email string) error
}

type passwordService struct {
	users  repository.UserRepository
	mailer mail.Mailer
}

// NewPasswordService constructs a new PasswordService.
func NewPasswordService(users repository.UserRepository, mailer mail.Mailer) PasswordService {
	return &passwordService{users: users, mailer: mailer}
}

func (s *passwordService) ChangePassword(ctx context.Context, userID, current, next, confirm string) error {
	if current == "" || next == "" || confirm == "" {
		return invalid("current, new and confirmation passwords are required")
	}
	if next != confirm {
		return invalid("new password and confirmation do not match")
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return missing(err, "user not found")
	}
	if !auth.CheckPassword(u.PasswordHash, current) {
		return invalid("current password is incorrect")
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return missing(err, "user not found")
	}
	return nil
}

func (s *passwordService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return invalid("email is required")
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("user not found")
		}
		return err
	}

	temp, err := auth.GenerateTemporaryPassword(TemporaryPasswordLength)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(temp)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return err
	}
	if err := s.mailer.SendTemporaryPassword(ctx, u.Email, u.Name, temp); err != nil {
		return fmt.Errorf("send temporary password: %w", err)
	}
	return nil
}
