package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrEmptyResult is returned when a lookup that must yield a row yields none.
	ErrEmptyResult = errors.New("empty result")
	ErrConflict    = errors.New("already exists")
	ErrInvalid     = errors.New("invalid input")
)

// FieldNotLoadedError reports a record that is missing a field the
// operation depends on.
type FieldNotLoadedError struct {
	Entity string
	Field  string
}

func (e *FieldNotLoadedError) Error() string {
	return fmt.Sprintf("field %s.%s not loaded", e.Entity, e.Field)
}

// UnknownProductsError lists item ids that do not match any product.
type UnknownProductsError struct {
	ItemIDs []string
}

func (e *UnknownProductsError) Error() string {
	return "unknown products: " + strings.Join(e.ItemIDs, ", ")
}

func notLoaded(entity, field string) error {
	return &FieldNotLoadedError{Entity: entity, Field: field}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
