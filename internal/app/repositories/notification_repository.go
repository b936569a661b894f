package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository defines the interface for notification log reads and
// the owner-scoped read marker. Creation happens inside the point award
// transaction.
type NotificationRepository interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, studentID int64) (*models.Notification, error)
}

type notificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{db: db}
}

// ListByStudent returns the student's notifications newest first
func (r *notificationRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, message, read, created_at
		FROM notifications
		WHERE student_id = $1
		ORDER BY created_at DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.StudentID, &n.Message, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead marks a notification as read, scoped to its owner
func (r *notificationRepository) MarkRead(ctx context.Context, id, studentID int64) (*models.Notification, error) {
	n := &models.Notification{}
	err := r.db.QueryRow(ctx, `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND student_id = $2
		RETURNING id, student_id, message, read, created_at`,
		id, studentID).
		Scan(&n.ID, &n.StudentID, &n.Message, &n.Read, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("error marking notification read: %w", err)
	}
	return n, nil
}
