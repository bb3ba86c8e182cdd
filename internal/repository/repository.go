// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) inside this directory.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("conflicting record")
	// ErrInUse is returned when a delete is blocked by referencing rows.
	ErrInUse = errors.New("record is referenced")
	// ErrInsufficientPoints is returned when a user cannot afford a deduction.
	ErrInsufficientPoints = errors.New("insufficient points")
	// ErrCapacityReached is returned when an event has no free confirmed seats.
	ErrCapacityReached = errors.New("event is full")
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Classify maps driver constraint errors to repository sentinels and passes
// everything else through unchanged.
func Classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrConflict
		case pgForeignKeyViolation:
			return ErrInUse
		}
	}
	return err
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
