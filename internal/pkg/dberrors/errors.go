package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const UniqueViolation = "23505"

// Constraint names created by the initial migration.
const (
	UsersUsernameKey    = "users_username_key"
	UsersPhoneNumberKey = "users_phone_number_key"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique violation on any constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation && pgErr.ConstraintName == constraintName
}
