package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// UniqueViolation reports whether err is a unique-constraint failure and, if
// so, returns the constraint name (postgres) or the driver message (sqlite)
// so callers can tell which key collided.
func UniqueViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return pgErr.ConstraintName, true
		}
		return "", false
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint failed") {
		return msg, true
	}
	return "", false
}

// IsUniqueViolationOn is UniqueViolation narrowed to constraints or columns
// whose name contains key.
func IsUniqueViolationOn(err error, key string) bool {
	name, ok := UniqueViolation(err)
	return ok && strings.Contains(strings.ToLower(name), strings.ToLower(key))
}
