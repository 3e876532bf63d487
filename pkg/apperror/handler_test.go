package apperror

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarush10000/Sooru-Demo/pkg/logger"
)

func runHandler(t *testing.T, method string, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/api/estimate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(logger.Discard())(err, c)

	if method == http.MethodHead {
		return rec, nil
	}

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	errObj, ok := resp["error"].(map[string]any)
	require.True(t, ok, "response should contain an error object")
	return rec, errObj
}

func TestHTTPErrorHandler_AppError(t *testing.T) {
	details := map[string]any{"style": "Baroque"}
	rec, errObj := runHandler(t, http.MethodPost, ErrValidation.WithDetails(details))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errObj["code"])
	assert.Equal(t, "Validation failed", errObj["message"])
	assert.Equal(t, map[string]any{"style": "Baroque"}, errObj["details"])
}

func TestHTTPErrorHandler_EchoStringError(t *testing.T) {
	tests := []struct {
		status   int
		wantCode string
	}{
		{http.StatusNotFound, "not_found"},
		{http.StatusBadRequest, "bad_request"},
		{http.StatusMethodNotAllowed, "method_not_allowed"},
		{http.StatusTooManyRequests, "rate_limited"},
		{http.StatusTeapot, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			rec, errObj := runHandler(t, http.MethodGet, echo.NewHTTPError(tt.status, "nope"))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantCode, errObj["code"])
			assert.Equal(t, "nope", errObj["message"])
		})
	}
}

func TestHTTPErrorHandler_EchoStructuredError(t *testing.T) {
	rec, errObj := runHandler(t, http.MethodGet, ErrUnknownPlatform.ToEchoError())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknown_platform", errObj["code"])
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec, errObj := runHandler(t, http.MethodGet, errors.New("database on fire"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", errObj["code"])
	assert.Equal(t, "An internal error occurred", errObj["message"])
}

func TestHTTPErrorHandler_HeadHasNoBody(t *testing.T) {
	rec, _ := runHandler(t, http.MethodHead, ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
