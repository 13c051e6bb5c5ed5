package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"domain passthrough", NewForbidden("Access denied."), http.StatusForbidden, "FORBIDDEN"},
		{"wrapped domain", fmt.Errorf("ctx: %w", NewValidationError("bad", nil)), http.StatusBadRequest, "VALIDATION_FAILED"},
		{"no rows", pgx.ErrNoRows, http.StatusNotFound, "NOT_FOUND"},
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusBadRequest, "CONFLICT"},
		{"foreign key violation", fmt.Errorf("upsert: %w", &pgconn.PgError{Code: "23503"}), http.StatusNotFound, "NOT_FOUND"},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
	assert.Nil(t, ToDomainError(nil))
}

func TestInternalErrorHidesCause(t *testing.T) {
	cause := errors.New("connection refused")
	de := ToDomainError(NewInternalError(cause))

	assert.Equal(t, "Server error.", de.Message)
	assert.ErrorIs(t, de, cause)
}

func TestInvalidCredentialsIsUniform(t *testing.T) {
	assert.Equal(t, NewInvalidCredentials().Error(), NewInvalidCredentials().Error())
	assert.Equal(t, http.StatusBadRequest, ToDomainError(NewInvalidCredentials()).HTTPStatus)
}
