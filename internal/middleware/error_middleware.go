package middleware

import (
	"errors"
	"net/http"

	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/observability"
	"github.com/emre/classpulse/internal/pkg/apperrors"
	"github.com/emre/classpulse/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

// HandleAPIError maps service errors to HTTP responses. Duplicate-unique-field
// conflicts come back as 400 with a field hint rather than 409.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Permission denied"))
	case errors.Is(err, apperrors.ErrAccountInactive):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Account is not active"))
	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrPointNotFound),
		errors.Is(err, apperrors.ErrNotificationNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		response := dto.NewErrorResponse(err.Error())
		if field := apperrors.FieldHint(err); field != "" {
			response = response.WithField(field)
		}
		c.JSON(http.StatusBadRequest, response)
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	default:
		logger.Error().Err(err).Msg("Unhandled error")
		observability.CaptureErr(err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
