package dto

import (
	"github.com/emre/classpulse/internal/app/models"
)

// ChangeRoleRequest updates a student's role
type ChangeRoleRequest struct {
	Role models.Role `json:"role" binding:"required,oneof=admin user"`
}

// ChangeStatusRequest updates a student's status
type ChangeStatusRequest struct {
	Status models.Status `json:"status" binding:"required,oneof=active suspended banned"`
}

// UpdateStudentRequest enumerates the admin-mutable fields.
// Requests containing any other key are rejected.
type UpdateStudentRequest struct {
	Name         *string      `json:"name"`
	ClassSection *string      `json:"classSection"`
	Role         *models.Role `json:"role"`
}
