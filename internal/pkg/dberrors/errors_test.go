package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: UniqueViolation, ConstraintName: UsersUsernameKey}
	wrapped := fmt.Errorf("insert user: %w", dup)

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(wrapped))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: UniqueViolation, ConstraintName: UsersPhoneNumberKey})

	assert.True(t, IsDuplicateConstraintError(dup, UsersPhoneNumberKey))
	assert.False(t, IsDuplicateConstraintError(dup, UsersUsernameKey))
}
