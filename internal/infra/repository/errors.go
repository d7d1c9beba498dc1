package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shift-scheduler/internal/store"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation recognizes a unique-constraint failure whether or not
// gorm's error translation is enabled.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case IsUniqueViolation(err):
		return store.ErrDuplicate
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
