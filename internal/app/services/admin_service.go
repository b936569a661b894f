package services

import (
	"context"
	"strings"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/app/repositories"
	"github.com/emre/classpulse/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

type adminService struct {
	students repositories.StudentRepository
	logger   zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(students repositories.StudentRepository, logger zerolog.Logger) AdminService {
	return &adminService{
		students: students,
		logger:   logger,
	}
}

// ListStudents returns every registered student
func (s *adminService) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.students.List(ctx)
}

// DeleteStudent removes the student and, through the schema's cascading
// foreign keys, their ledger entries and notifications. The deleted record
// is returned for the response body.
func (s *adminService) DeleteStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.students.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", id).Msg("Student deleted")
	return student, nil
}

// ChangeRole sets the student's role
func (s *adminService) ChangeRole(ctx context.Context, id int64, role models.Role) (*models.Student, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("role must be admin or user")
	}

	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Role = role
	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", id).Str("role", string(role)).Msg("Role changed")
	return student, nil
}

// ChangeStatus sets the student's account status. Suspended and banned
// accounts keep their data but fail the active gate on every request.
func (s *adminService) ChangeStatus(ctx context.Context, id int64, status models.Status) (*models.Student, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("status must be active, suspended or banned")
	}

	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Status = status
	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", id).Str("status", string(status)).Msg("Status changed")
	return student, nil
}

// UpdateStudent applies the admin-mutable profile fields
func (s *adminService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	validation := &apperrors.ValidationError{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			validation.Add("name cannot be blank")
		} else {
			student.Name = strings.TrimSpace(*req.Name)
		}
	}
	if req.ClassSection != nil {
		if strings.TrimSpace(*req.ClassSection) == "" {
			validation.Add("classSection cannot be blank")
		} else {
			student.ClassSection = strings.TrimSpace(*req.ClassSection)
		}
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			validation.Add("role must be admin or user")
		} else {
			student.Role = *req.Role
		}
	}
	if validation.HasErrors() {
		return nil, validation
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}
