package auth

import (
	"testing"
	"time"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/stretchr/testify/assert"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "unit-test-secret",
		TokenExp:    exp,
		TokenIssuer: "classpulse.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)
	student := &models.Student{
		ID:           42,
		Role:         models.RoleUser,
		ClassSection: "CS-B",
	}

	token, err := svc.GenerateToken(student)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.StudentID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "CS-B", claims.ClassSection)
	assert.Equal(t, "classpulse.test", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.GenerateToken(&models.Student{ID: 1, Role: models.RoleUser})
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := newTestService(time.Hour).GenerateToken(&models.Student{ID: 1, Role: models.RoleUser})
	assert.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("abc.def.ghi")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
