// Package controllers handles HTTP request handling
package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// formatValidationError turns binding failures into the comma-joined message
// format used across the API.
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Invalid request body"
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:]
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(messages, ", ")
}

// bindJSON binds the request body and writes a 400 on failure. Returns false
// when the caller should stop.
func bindJSON(ctx *gin.Context, target interface{}) bool {
	if err := ctx.ShouldBindJSON(target); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(formatValidationError(err)))
		return false
	}
	return true
}

// bindStrictJSON binds the request body rejecting unknown keys. Update
// endpoints use it so a request naming a non-mutable field fails instead of
// being silently trimmed.
func bindStrictJSON(ctx *gin.Context, target interface{}) bool {
	decoder := json.NewDecoder(ctx.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Request contains invalid or non-updatable fields"))
		return false
	}
	return true
}

// parseIDParam parses the named path parameter as a positive integer ID
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(fmt.Sprintf("Invalid %s parameter", name)))
		return 0, false
	}
	return id, true
}
