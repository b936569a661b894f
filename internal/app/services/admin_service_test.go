package services

import (
	"context"
	"testing"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/app/repositories/mocks"
	"github.com/emre/classpulse/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestChangeRoleRejectsUnknownRole(t *testing.T) {
	repo := new(mocks.MockStudentRepo)
	svc := NewAdminService(repo, zerolog.Nop())

	_, err := svc.ChangeRole(context.Background(), 1, models.Role("superuser"))

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeStatusSuspends(t *testing.T) {
	repo := new(mocks.MockStudentRepo)
	repo.On("GetByID", mock.Anything, int64(2)).Return(&models.Student{ID: 2, Status: models.StatusActive}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *models.Student) bool {
		return s.Status == models.StatusSuspended
	})).Return(nil)

	svc := NewAdminService(repo, zerolog.Nop())
	student, err := svc.ChangeStatus(context.Background(), 2, models.StatusSuspended)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusSuspended, student.Status)
	repo.AssertExpectations(t)
}

func TestChangeStatusMissingStudent(t *testing.T) {
	repo := new(mocks.MockStudentRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrStudentNotFound)

	svc := NewAdminService(repo, zerolog.Nop())
	_, err := svc.ChangeStatus(context.Background(), 99, models.StatusBanned)

	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudentReturnsDeletedRecord(t *testing.T) {
	repo := new(mocks.MockStudentRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&models.Student{ID: 3, Name: "Gone"}, nil)
	repo.On("Delete", mock.Anything, int64(3)).Return(nil)

	svc := NewAdminService(repo, zerolog.Nop())
	student, err := svc.DeleteStudent(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, "Gone", student.Name)
	repo.AssertExpectations(t)
}

func TestUpdateStudentAppliesMutableFields(t *testing.T) {
	repo := new(mocks.MockStudentRepo)
	repo.On("GetByID", mock.Anything, int64(4)).Return(&models.Student{
		ID: 4, Name: "Old", ClassSection: "CS-A", Role: models.RoleUser,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	name := "New Name"
	role := models.RoleAdmin
	svc := NewAdminService(repo, zerolog.Nop())
	student, err := svc.UpdateStudent(context.Background(), 4, &dto.UpdateStudentRequest{
		Name: &name,
		Role: &role,
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", student.Name)
	assert.Equal(t, models.RoleAdmin, student.Role)
	assert.Equal(t, "CS-A", student.ClassSection)
}

func TestUpdateStudentRejectsInvalidRole(t *testing.T) {
	repo := new(mocks.MockStudentRepo)
	repo.On("GetByID", mock.Anything, int64(4)).Return(&models.Student{ID: 4}, nil)

	role := models.Role("owner")
	svc := NewAdminService(repo, zerolog.Nop())
	_, err := svc.UpdateStudent(context.Background(), 4, &dto.UpdateStudentRequest{Role: &role})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
