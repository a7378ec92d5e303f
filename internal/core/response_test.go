// MentorHive | 2026
// response_test.go

package core

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]string{"id": "1"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)
}

func TestPaginatedPageCount(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		pages int
	}{
		{"twelve entries five per page", 12, 5, 3},
		{"exact fit", 10, 5, 2},
		{"empty", 0, 5, 0},
		{"single page", 3, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Paginated(rec, []string{}, tt.total, 1, tt.limit)

			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Pagination)
			assert.Equal(t, tt.total, env.Pagination.Total)
			assert.Equal(t, tt.pages, env.Pagination.Pages)
		})
	}
}

func TestJSONErrorWithAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, NotFoundError("mentor profile"))

	assert.Equal(t, 404, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "MENTOR_PROFILE_NOT_FOUND", env.Code)
	assert.Equal(t, "mentor profile not found", env.Error)
}

func TestJSONErrorFallsBackToInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, errors.New("boom"))

	assert.Equal(t, 500, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "INTERNAL", env.Code)
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
		code   string
	}{
		{"no token", NoTokenError(), 401, "NO_TOKEN"},
		{"expired", TokenExpiredError(), 401, "TOKEN_EXPIRED"},
		{"invalid", TokenInvalidError(), 401, "INVALID_TOKEN"},
		{"forbidden", ForbiddenError("nope"), 403, "INSUFFICIENT_PERMISSIONS"},
		{"duplicate", DuplicateError("email"), 409, "EMAIL_EXISTS"},
		{"secret", InvalidSecretKeyError(), 403, "INVALID_SECRET_KEY"},
		{"not found", NotFoundError("doubt"), 404, "DOUBT_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Title string `validate:"omitempty,min=10"`
	}

	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.Struct(payload{Title: "short"})
	require.Error(t, err)

	msg := FormatValidationError(err)
	assert.Contains(t, msg, "email is required")
	assert.Contains(t, msg, "title must be at least 10 characters")

	assert.Equal(t, "invalid request", FormatValidationError(errors.New("x")))
}
