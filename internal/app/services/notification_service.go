package services

import (
	"context"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/repositories"
)

type notificationService struct {
	notifications repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifications repositories.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

// List returns the caller's notifications newest first
func (s *notificationService) List(ctx context.Context, studentID int64) ([]models.Notification, error) {
	return s.notifications.ListByStudent(ctx, studentID)
}

// MarkRead flags the notification as read. The repository scopes the update
// to the owning student, so another student's notification reads as missing.
func (s *notificationService) MarkRead(ctx context.Context, id, studentID int64) (*models.Notification, error) {
	return s.notifications.MarkRead(ctx, id, studentID)
}
