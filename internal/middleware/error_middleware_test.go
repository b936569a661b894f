package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func respondWith(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err)

	var body dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"inactive account", apperrors.ErrAccountInactive, http.StatusForbidden},
		{"student missing", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"point missing", apperrors.ErrPointNotFound, http.StatusNotFound},
		{"notification missing", apperrors.ErrNotificationNotFound, http.StatusNotFound},
		{"validation", apperrors.NewValidationError("points must be between 1 and 10"), http.StatusBadRequest},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := respondWith(t, tt.err)
			assert.Equal(t, tt.status, status)
		})
	}
}

// Duplicate-unique-field conflicts respond 400 with the offending field named.
func TestHandleAPIErrorConflictCarriesFieldHint(t *testing.T) {
	status, body := respondWith(t, apperrors.NewConflictError(apperrors.ErrEmailAlreadyExists, "email"))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "email already exists", body.Error)
	assert.Equal(t, "email", body.Field)
}

func TestHandleAPIErrorValidationJoinsMessages(t *testing.T) {
	err := apperrors.NewValidationError(
		"points must be between 1 and 10",
		"reason must be at least 10 characters",
	)

	status, body := respondWith(t, err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "points must be between 1 and 10, reason must be at least 10 characters", body.Error)
	assert.Empty(t, body.Field)
}

func TestHandleAPIErrorInternalHidesDetails(t *testing.T) {
	_, body := respondWith(t, errors.New("pq: relation does not exist"))

	assert.Equal(t, "Internal server error", body.Error)
}
