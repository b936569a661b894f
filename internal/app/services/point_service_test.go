package services

import (
	"context"
	"errors"
	"testing"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/app/repositories/mocks"
	"github.com/emre/classpulse/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testStudent(id int64, role models.Role) *models.Student {
	return &models.Student{
		ID:           id,
		StudentID:    "20230042",
		Name:         "Jane Doe",
		ClassSection: "CS-A",
		Email:        "jane@school.edu",
		Role:         role,
		Status:       models.StatusActive,
	}
}

func TestAwardRejectsOutOfRangePoints(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	svc := NewPointService(repo, zerolog.Nop())

	for _, points := range []int{0, 11, -3} {
		_, err := svc.Award(context.Background(), testStudent(1, models.RoleUser), &dto.AwardPointRequest{
			Points: points,
			Reason: "participated in the class debate",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
	repo.AssertNotCalled(t, "CreateWithNotification", mock.Anything, mock.Anything, mock.Anything)
}

func TestAwardRejectsShortReason(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	svc := NewPointService(repo, zerolog.Nop())

	_, err := svc.Award(context.Background(), testStudent(1, models.RoleUser), &dto.AwardPointRequest{
		Points: 5,
		Reason: "short",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAwardCollectsAllViolations(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	svc := NewPointService(repo, zerolog.Nop())

	_, err := svc.Award(context.Background(), testStudent(1, models.RoleUser), &dto.AwardPointRequest{
		Points: 0,
		Reason: "short",
	})

	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Len(t, validation.Messages, 2)
}

func TestAwardBoundaryValuesAccepted(t *testing.T) {
	for _, points := range []int{1, 10} {
		repo := new(mocks.MockPointRepo)
		repo.On("CreateWithNotification", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		svc := NewPointService(repo, zerolog.Nop())

		response, err := svc.Award(context.Background(), testStudent(1, models.RoleUser), &dto.AwardPointRequest{
			Points: points,
			Reason: "helped a classmate with homework",
		})

		assert.NoError(t, err)
		assert.Equal(t, points, response.Point.Points)
		repo.AssertExpectations(t)
	}
}

func TestAwardDefaultsSectionToCaller(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("CreateWithNotification", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	svc := NewPointService(repo, zerolog.Nop())

	response, err := svc.Award(context.Background(), testStudent(1, models.RoleUser), &dto.AwardPointRequest{
		Points: 5,
		Reason: "answered a hard question in lecture",
	})

	assert.NoError(t, err)
	assert.Equal(t, "CS-A", response.Point.Section)
}

func TestAwardNotificationMessage(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("CreateWithNotification", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	svc := NewPointService(repo, zerolog.Nop())

	response, err := svc.Award(context.Background(), testStudent(1, models.RoleUser), &dto.AwardPointRequest{
		Points: 7,
		Reason: "organized the study group",
	})

	assert.NoError(t, err)
	assert.Equal(t, "You earned 7 points for: organized the study group", response.Notification.Message)
}

func TestEditDeniedForNonOwner(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(&models.EngagementPoint{ID: 9, StudentID: 2}, nil)
	svc := NewPointService(repo, zerolog.Nop())

	_, err := svc.Edit(context.Background(), testStudent(1, models.RoleUser), 9, &dto.UpdatePointRequest{
		Points: 5,
		Reason: "updated reason with enough length",
	})

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEditAllowedForAdmin(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("GetByID", mock.Anything, int64(9)).Return(&models.EngagementPoint{ID: 9, StudentID: 2, Points: 3}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	svc := NewPointService(repo, zerolog.Nop())

	point, err := svc.Edit(context.Background(), testStudent(1, models.RoleAdmin), 9, &dto.UpdatePointRequest{
		Points: 5,
		Reason: "updated reason with enough length",
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, point.Points)
	repo.AssertExpectations(t)
}

func TestRemoveReturnsDeletedRecord(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("GetByID", mock.Anything, int64(4)).Return(&models.EngagementPoint{ID: 4, StudentID: 1, Points: 6}, nil)
	repo.On("Delete", mock.Anything, int64(4)).Return(nil)
	svc := NewPointService(repo, zerolog.Nop())

	point, err := svc.Remove(context.Background(), testStudent(1, models.RoleUser), 4)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), point.ID)
	repo.AssertExpectations(t)
}

func TestRemoveDeniedForNonOwner(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("GetByID", mock.Anything, int64(4)).Return(&models.EngagementPoint{ID: 4, StudentID: 2}, nil)
	svc := NewPointService(repo, zerolog.Nop())

	_, err := svc.Remove(context.Background(), testStudent(1, models.RoleUser), 4)

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRemoveMissingEntry(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrPointNotFound)
	svc := NewPointService(repo, zerolog.Nop())

	_, err := svc.Remove(context.Background(), testStudent(1, models.RoleUser), 99)

	assert.ErrorIs(t, err, apperrors.ErrPointNotFound)
}

func TestHistoryPassesFiltersThrough(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	filters := dto.HistoryFilters{Section: "CS-A"}
	repo.On("ListByStudent", mock.Anything, int64(1), filters).Return([]models.EngagementPoint{{ID: 1}}, nil)
	svc := NewPointService(repo, zerolog.Nop())

	points, err := svc.History(context.Background(), 1, filters)

	assert.NoError(t, err)
	assert.Len(t, points, 1)
	repo.AssertExpectations(t)
}

func TestHistoryPropagatesRepoError(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repoErr := errors.New("connection reset")
	repo.On("ListByStudent", mock.Anything, int64(1), mock.Anything).Return(nil, repoErr)
	svc := NewPointService(repo, zerolog.Nop())

	_, err := svc.History(context.Background(), 1, dto.HistoryFilters{})

	assert.ErrorIs(t, err, repoErr)
}
