// Package repositories contains the database access layer.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	Students      StudentRepository
	Points        PointRepository
	Notifications NotificationRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Students:      NewStudentRepository(db),
		Points:        NewPointRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}
