package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("Detects the SQLSTATE from the pg driver", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", ConstraintName: "projects_pkey"}
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("Detects a wrapped driver error", func(t *testing.T) {
		err := fmt.Errorf("create project: %w", &pgconn.PgError{Code: "23505"})
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("Detects gorm's translated duplicate key error", func(t *testing.T) {
		assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	})

	t.Run("Falls back to the message for flattened errors", func(t *testing.T) {
		err := errors.New(`ERROR: duplicate key value violates unique constraint "projects_pkey"`)
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("Other SQLSTATEs do not match", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
		assert.False(t, IsUniqueViolation(errors.New("connection refused")))
		assert.False(t, IsUniqueViolation(nil))
	})
}

func TestNewDatabaseError(t *testing.T) {
	t.Run("Unique violation maps to conflict", func(t *testing.T) {
		apiErr := NewDatabaseError("create", "project", &pgconn.PgError{Code: "23505"})
		assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	})

	t.Run("Foreign key violation maps to bad request", func(t *testing.T) {
		apiErr := NewDatabaseError("create", "chat response", &pgconn.PgError{Code: "23503"})
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})

	t.Run("Record not found maps to not found", func(t *testing.T) {
		apiErr := NewDatabaseError("increment views of", "blog post", gorm.ErrRecordNotFound)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("Connection failures map to service unavailable", func(t *testing.T) {
		apiErr := NewDatabaseError("find", "projects", errors.New("dial tcp: connection refused"))
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	})

	t.Run("Everything else maps to internal server error", func(t *testing.T) {
		apiErr := NewDatabaseError("find", "projects", errors.New("syntax error at or near SELECT"))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	})

	t.Run("Cause is preserved for the error chain", func(t *testing.T) {
		cause := &pgconn.PgError{Code: "23505"}
		apiErr := NewDatabaseError("create", "project", cause)
		assert.ErrorIs(t, apiErr.Cause, error(cause))
	})
}
