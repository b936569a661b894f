package middleware

import (
	"errors"
	"net/http"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/app/repositories"
	"github.com/emre/classpulse/internal/pkg/apperrors"
	"github.com/emre/classpulse/internal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// ContextStudentKey is the gin context key holding the authenticated student
const ContextStudentKey = "student"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	students   repositories.StudentRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, students repositories.StudentRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		students:   students,
	}
}

// JWTAuth validates the bearer token and loads the current student record.
// The record is re-fetched on every request so role and status changes take
// effect immediately, regardless of what the token claims say.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		student, err := m.students.GetByID(c.Request.Context(), claims.StudentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Account no longer exists"))
				return
			}
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextStudentKey, student)
		c.Next()
	}
}

// ActiveRequired rejects suspended and banned accounts
func (m *AuthMiddleware) ActiveRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		student := CurrentStudent(c)
		if student == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}
		if student.Status != models.StatusActive {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Account is not active"))
			return
		}
		c.Next()
	}
}

// AdminRequired rejects callers without the admin role
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		student := CurrentStudent(c)
		if student == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}
		if student.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Admin access required"))
			return
		}
		c.Next()
	}
}

// CurrentStudent returns the authenticated student from the gin context,
// or nil when JWTAuth has not run.
func CurrentStudent(c *gin.Context) *models.Student {
	value, exists := c.Get(ContextStudentKey)
	if !exists {
		return nil
	}
	student, ok := value.(*models.Student)
	if !ok {
		return nil
	}
	return student
}
