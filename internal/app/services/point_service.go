package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/app/repositories"
	"github.com/emre/classpulse/internal/metrics"
	"github.com/emre/classpulse/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

type pointService struct {
	points repositories.PointRepository
	logger zerolog.Logger
}

// NewPointService creates a new PointService
func NewPointService(points repositories.PointRepository, logger zerolog.Logger) PointService {
	return &pointService{
		points: points,
		logger: logger,
	}
}

// validateEntry collects every violated constraint so the caller sees all of
// them at once. This mirrors the schema checks, which stay authoritative.
func validateEntry(points int, reason string) error {
	validation := &apperrors.ValidationError{}
	if points < models.MinPoints || points > models.MaxPoints {
		validation.Add("points must be between %d and %d", models.MinPoints, models.MaxPoints)
	}
	if len(strings.TrimSpace(reason)) < models.MinReasonLength {
		validation.Add("reason must be at least %d characters", models.MinReasonLength)
	}
	if validation.HasErrors() {
		return validation
	}
	return nil
}

// canModify reports whether the caller may edit or delete the entry
func canModify(caller *models.Student, point *models.EngagementPoint) bool {
	return point.StudentID == caller.ID || caller.Role == models.RoleAdmin
}

// Award creates a ledger entry and its notification as one logical operation.
// The section defaults to the caller's class section.
func (s *pointService) Award(ctx context.Context, caller *models.Student, req *dto.AwardPointRequest) (*dto.AwardPointResponse, error) {
	if err := validateEntry(req.Points, req.Reason); err != nil {
		return nil, err
	}

	section := strings.TrimSpace(req.Section)
	if section == "" {
		section = caller.ClassSection
	}

	point := &models.EngagementPoint{
		StudentID: caller.ID,
		Points:    req.Points,
		Reason:    strings.TrimSpace(req.Reason),
		Section:   section,
	}
	note := &models.Notification{
		Message: fmt.Sprintf("You earned %d points for: %s", point.Points, point.Reason),
	}

	if err := s.points.CreateWithNotification(ctx, point, note); err != nil {
		return nil, err
	}

	metrics.PointsAwarded.Inc()
	s.logger.Info().Int64("studentID", caller.ID).Int("points", point.Points).Msg("Points awarded")

	summary := caller.Summary()
	point.Student = &summary
	return &dto.AwardPointResponse{Point: *point, Notification: *note}, nil
}

// History returns the caller's ledger entries newest first
func (s *pointService) History(ctx context.Context, studentID int64, filters dto.HistoryFilters) ([]models.EngagementPoint, error) {
	return s.points.ListByStudent(ctx, studentID, filters)
}

// Edit revalidates and re-persists points/reason. Only the owner or an admin
// may edit an entry.
func (s *pointService) Edit(ctx context.Context, caller *models.Student, id int64, req *dto.UpdatePointRequest) (*models.EngagementPoint, error) {
	if err := validateEntry(req.Points, req.Reason); err != nil {
		return nil, err
	}

	point, err := s.points.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(caller, point) {
		return nil, apperrors.ErrPermissionDenied
	}

	point.Points = req.Points
	point.Reason = strings.TrimSpace(req.Reason)
	if err := s.points.Update(ctx, point); err != nil {
		return nil, err
	}
	return point, nil
}

// Remove deletes an entry and returns it. Only the owner or an admin may
// delete an entry.
func (s *pointService) Remove(ctx context.Context, caller *models.Student, id int64) (*models.EngagementPoint, error) {
	point, err := s.points.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(caller, point) {
		return nil, apperrors.ErrPermissionDenied
	}

	if err := s.points.Delete(ctx, id); err != nil {
		return nil, err
	}
	return point, nil
}
