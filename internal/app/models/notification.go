package models

import (
	"time"
)

// Notification defines a per-student message created as a point-award side
// effect. Notifications are never created independently.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Message   string    `json:"message" db:"message"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
