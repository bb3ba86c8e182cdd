// Package mail sends transactional emails over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"cinesport/internal/config"
)

// ErrNotConfigured is returned when no SMTP host is set.
var ErrNotConfigured = errors.New("smtp is not configured")

// Mailer sends account emails.
type Mailer interface {
	// SendTemporaryPassword emails a freshly generated password to the user.
	SendTemporaryPassword(ctx context.Context, to, name, password string) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer implements Mailer with gomail.
type SMTPMailer struct {
	from   string
	dialer dialer
}

// NewSMTP builds a mailer from config. An empty host yields a mailer whose sends fail with ErrNotConfigured.
func NewSMTP(cfg config.SMTPConfig) *SMTPMailer {
	m := &SMTPMailer{from: cfg.From}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return m
}

// SendTemporaryPassword implements Mailer.
func (m *SMTPMailer) SendTemporaryPassword(ctx context.Context, to, name, password string) error {
	if m.dialer == nil {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(temporaryPasswordMessage(m.from, to, name, password)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func temporaryPasswordMessage(from, to, name, password string) *gomail.Message {
	msg := gomail.NewMessage(gomail.SetEncoding(gomail.Unencoded))
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your temporary password")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Hello %s,</p><p>Your temporary password is <strong>%s</strong>.</p>"+
			"<p>Sign in and change it from your profile.</p>",
		html.EscapeString(name), html.EscapeString(password),
	))
	return msg
}
