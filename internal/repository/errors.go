package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotEnoughTickets = errors.New("not enough tickets available")

// IsUniqueViolation detects duplicate-key failures from either backend.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	// SQLite has no typed driver error to match on.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
