package models

import (
	"time"
)

// Point value and reason bounds enforced at persistence time.
const (
	MinPoints       = 1
	MaxPoints       = 10
	MinReasonLength = 10
)

// EngagementPoint defines a single ledger entry in the 'engagement_points' table.
// Entries are immutable except through the owner/admin edit endpoint.
type EngagementPoint struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"` // Owning student's row ID
	Points    int       `json:"points" db:"points"`        // 1..10 inclusive
	Reason    string    `json:"reason" db:"reason"`        // At least 10 characters
	Section   string    `json:"section" db:"section"`
	Date      time.Time `json:"date" db:"date"`

	Student *StudentSummary `json:"student,omitempty"` // Joined owner summary, no db tag
}

// StudentTotal is a per-student aggregate over the ledger.
type StudentTotal struct {
	Student     Student `json:"student"`
	TotalPoints int     `json:"totalPoints"`
}

// SectionTotal is a per-section aggregate over the ledger.
type SectionTotal struct {
	Section     string `json:"section"`
	TotalPoints int    `json:"totalPoints"`
}

// BucketTotal is a time-bucketed aggregate (day, month or ISO week).
type BucketTotal struct {
	Bucket string `json:"bucket"`
	Points int    `json:"points"`
}
