// Package service implements the use cases of the API on top of the repositories
// and the external clients. Services return the sentinels below, usually wrapped
// in an *Error carrying the message shown to clients.
package service

import (
	"database/sql"
	"errors"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrEventFull          = errors.New("event is full")
)

// Error is a client-facing failure. Kind is one of the sentinels above.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func invalid(msg string) error      { return &Error{Kind: ErrInvalidInput, Msg: msg} }
func unauthorized(msg string) error { return &Error{Kind: ErrUnauthorized, Msg: msg} }
func forbidden(msg string) error    { return &Error{Kind: ErrForbidden, Msg: msg} }
func notFound(msg string) error     { return &Error{Kind: ErrNotFound, Msg: msg} }
func conflict(msg string) error     { return &Error{Kind: ErrConflict, Msg: msg} }

var (
	errEventFull          = &Error{Kind: ErrEventFull, Msg: "event is full"}
	errInsufficientPoints = &Error{Kind: ErrInsufficientPoints, Msg: "insufficient points"}
)

// missing turns sql.ErrNoRows into a not found error with msg.
func missing(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(msg)
	}
	return err
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
