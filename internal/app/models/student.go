package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the student
	StudentID    string    `json:"studentId" db:"student_id" example:"20230042"`             // School-assigned student number
	Name         string    `json:"name" db:"name" example:"Jane Doe"`                        // Display name
	ClassSection string    `json:"classSection" db:"class_section" example:"CS-A"`           // Class section the student belongs to
	Email        string    `json:"email" db:"email" example:"jane@school.edu"`               // Email address (unique)
	Password     string    `json:"-" db:"password"`                                          // Bcrypt hash (excluded from JSON)
	Role         Role      `json:"role" db:"role" example:"user"`                            // admin or user
	Status       Status    `json:"status" db:"status" example:"active"`                      // active, suspended or banned
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the student registered
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp of the last update
}

// StudentSummary is the joined projection attached to point records.
type StudentSummary struct {
	Name         string `json:"name" db:"name"`
	StudentID    string `json:"studentId" db:"student_id"`
	ClassSection string `json:"classSection" db:"class_section"`
}

// Summary returns the public projection of the student.
func (s *Student) Summary() StudentSummary {
	return StudentSummary{
		Name:         s.Name,
		StudentID:    s.StudentID,
		ClassSection: s.ClassSection,
	}
}
