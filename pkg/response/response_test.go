package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-healthcare-records/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperror.Unauthorized("Invalid token"), http.StatusUnauthorized},
		{apperror.Forbidden("Access denied"), http.StatusForbidden},
		{apperror.NotFound("Patient not found"), http.StatusNotFound},
		{apperror.Conflict("Email already registered"), http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", apperror.Forbidden("x")), http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusOf(tc.err), tc.err.Error())
	}
}

func TestFromError(t *testing.T) {
	rec := httptest.NewRecorder()
	FromError(rec, apperror.Conflict("Email already registered"), "Failed to sign up")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Email already registered", body.Message)
}

func TestFromErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	FromError(rec, errors.New("dial tcp: connection refused"), "Failed to login")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), "Failed to login")
}
