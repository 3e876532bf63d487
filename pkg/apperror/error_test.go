package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	assert.Equal(t, "bad_request: Invalid request", ErrBadRequest.Error())

	wrapped := ErrInternal.WithInternal(errors.New("template exploded"))
	assert.Equal(t, "internal_error: An internal error occurred (template exploded)", wrapped.Error())
}

func TestError_CopiesDoNotMutateOriginal(t *testing.T) {
	custom := ErrValidation.WithMessage("rooms is not a known option").
		WithDetails(map[string]any{"rooms": "7 Rooms"})

	assert.Equal(t, "Validation failed", ErrValidation.Message)
	assert.Nil(t, ErrValidation.Details)
	assert.Equal(t, "rooms is not a known option", custom.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, custom.HTTPStatus)
}

func TestError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("handler: %w", ErrUnknownPlatform.WithMessage("platform 'myspace' is not supported"))

	assert.True(t, errors.Is(err, ErrUnknownPlatform))
	assert.False(t, errors.Is(err, ErrBadRequest))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternal("render failed", cause)

	assert.ErrorIs(t, err, cause)
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", NewBadRequest("bad body"), http.StatusBadRequest, "bad_request"},
		{"wrapped app error", fmt.Errorf("outer: %w", ErrRateLimited), http.StatusTooManyRequests, "rate_limited"},
		{"not found helper", NewNotFound("share platform", "fax"), http.StatusNotFound, "not_found"},
		{"plain error", errors.New("unexpected"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ToHTTPError(tt.err)
			assert.Equal(t, tt.wantStatus, status)

			inner, ok := body["error"].(map[string]any)
			if assert.True(t, ok) {
				assert.Equal(t, tt.wantCode, inner["code"])
			}
		})
	}
}

func TestNewNotFound_Message(t *testing.T) {
	err := NewNotFound("share platform", "fax")
	assert.Equal(t, "share platform 'fax' not found", err.Message)
}
