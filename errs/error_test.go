package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"moviedb/errs"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	err := &errs.Error{Code: errs.ENOTFOUND, Message: "no movie with that id"}

	assert.Equal(t, "application error: code=not_found message=no movie with that id", err.Error())
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error returns empty string", err: nil, expected: ""},
		{name: "application error returns its code", err: errs.Errorf(errs.EINVALID, "title is required"), expected: errs.EINVALID},
		{name: "not implemented", err: errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured"), expected: errs.ENOTIMPLEMENTED},
		{name: "non-application error returns EINTERNAL", err: errors.New("connection reset"), expected: errs.EINTERNAL},
		{
			name:     "wrapped application error",
			err:      fmt.Errorf("find movie 7: %w", errs.Errorf(errs.ENOTFOUND, "no movie with that id")),
			expected: errs.ENOTFOUND,
		},
		{
			name:     "joined application error",
			err:      errors.Join(errs.Errorf(errs.ECONFLICT, "already exists")),
			expected: errs.ECONFLICT,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errs.ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error returns empty string", err: nil, expected: ""},
		{name: "application error returns its message", err: errs.Errorf(errs.EINVALID, "genre does not exist"), expected: "genre does not exist"},
		{name: "non-application error is hidden", err: errors.New("pq: password authentication failed"), expected: "Internal error."},
		{
			name:     "wrapped application error",
			err:      fmt.Errorf("update movie 3: %w", errs.Errorf(errs.ENOTFOUND, "no movie with that id")),
			expected: "no movie with that id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errs.ErrorMessage(tt.err))
		})
	}
}

func TestErrorf(t *testing.T) {
	err := errs.Errorf(errs.EINVALID, "validation error: %s must be %s", "rating", "a number")

	assert.Equal(t, errs.EINVALID, err.Code)
	assert.Equal(t, "validation error: rating must be a number", err.Message)
	assert.Equal(t, "application error: code=invalid message=validation error: rating must be a number", err.Error())
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, "conflict", errs.ECONFLICT)
	assert.Equal(t, "internal", errs.EINTERNAL)
	assert.Equal(t, "invalid", errs.EINVALID)
	assert.Equal(t, "not_found", errs.ENOTFOUND)
	assert.Equal(t, "not_implemented", errs.ENOTIMPLEMENTED)
	assert.Equal(t, "unauthorized", errs.EUNAUTHORIZED)
}
