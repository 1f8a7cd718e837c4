package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeErr(t *testing.T, err error) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, JSON(c, err))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestJSONDomainError(t *testing.T) {
	rec, body := writeErr(t, ErrAlreadyRegistered)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ALREADY_REGISTERED", body.Code)
	assert.Equal(t, ErrAlreadyRegistered.Message, body.Message)
}

func TestJSONWrappedDomainError(t *testing.T) {
	rec, body := writeErr(t, fmt.Errorf("resolving inquiry: %w", ErrNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestJSONUnknownErrorIsInternal(t *testing.T) {
	rec, body := writeErr(t, errors.New("cursor closed unexpectedly"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	// Internals never leak into the client-facing message.
	assert.NotContains(t, body.Message, "cursor")
}

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrMissingToken.Status)
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.Status)
	assert.Equal(t, http.StatusForbidden, ErrForbidden.Status)
	assert.Equal(t, http.StatusBadRequest, ErrDuplicateEmail.Status)
	assert.Equal(t, http.StatusNotFound, ErrNotFound.Status)
}
