package dto

import (
	"github.com/emre/classpulse/internal/app/models"
)

// RegisterRequest contains student registration information
type RegisterRequest struct {
	StudentID    string `json:"studentId" binding:"required" example:"20230042"`
	Name         string `json:"name" binding:"required" example:"Jane Doe"`
	ClassSection string `json:"classSection" binding:"required" example:"CS-A"`
	Email        string `json:"email" binding:"required,email" example:"jane@school.edu"`
	Password     string `json:"password" binding:"required,min=8" example:"secret1234"`
}

// LoginRequest contains login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OAuthRequest carries an upstream-verified identity provider profile.
// The handshake itself happens outside this service; the caller forwards
// the verified profile to obtain a first-party token.
type OAuthRequest struct {
	Provider string `json:"provider" binding:"required" example:"google"`
	Subject  string `json:"subject" binding:"required" example:"109876543210987654321"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
}

// AuthResponse returns the student record together with a signed token
type AuthResponse struct {
	Student *models.Student `json:"student"`
	Token   string          `json:"token"`
}

// UpdateProfileRequest enumerates the self-service mutable fields.
// Requests containing any other key are rejected.
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	ClassSection *string `json:"classSection"`
}

// UpdatePasswordRequest changes the caller's password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// MandatoryUpdateRequest completes a profile created through OAuth
type MandatoryUpdateRequest struct {
	StudentID    string `json:"studentId" binding:"required"`
	ClassSection string `json:"classSection" binding:"required"`
}

// VerifyResponse reports token validity
type VerifyResponse struct {
	Valid bool `json:"valid"`
}
