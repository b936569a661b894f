// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/stretchr/testify/mock"
)

// MockStudentRepo mocks repositories.StudentRepository
type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockStudentRepo) Update(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStudentRepo) StudentIDTaken(ctx context.Context, studentID string, excludeID int64) (bool, error) {
	args := m.Called(ctx, studentID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudentRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPointRepo mocks repositories.PointRepository
type MockPointRepo struct {
	mock.Mock
}

func (m *MockPointRepo) CreateWithNotification(ctx context.Context, point *models.EngagementPoint, note *models.Notification) error {
	args := m.Called(ctx, point, note)
	return args.Error(0)
}

func (m *MockPointRepo) GetByID(ctx context.Context, id int64) (*models.EngagementPoint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EngagementPoint), args.Error(1)
}

func (m *MockPointRepo) ListByStudent(ctx context.Context, studentID int64, filters dto.HistoryFilters) ([]models.EngagementPoint, error) {
	args := m.Called(ctx, studentID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EngagementPoint), args.Error(1)
}

func (m *MockPointRepo) Update(ctx context.Context, point *models.EngagementPoint) error {
	args := m.Called(ctx, point)
	return args.Error(0)
}

func (m *MockPointRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPointRepo) TotalsByStudent(ctx context.Context) ([]models.StudentTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudentTotal), args.Error(1)
}

func (m *MockPointRepo) TotalsBySection(ctx context.Context) ([]models.SectionTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SectionTotal), args.Error(1)
}

func (m *MockPointRepo) TotalsByDay(ctx context.Context) ([]models.BucketTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BucketTotal), args.Error(1)
}

func (m *MockPointRepo) TotalsByMonth(ctx context.Context) ([]models.BucketTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BucketTotal), args.Error(1)
}

func (m *MockPointRepo) TotalsByWeek(ctx context.Context) ([]models.BucketTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BucketTotal), args.Error(1)
}

func (m *MockPointRepo) CountAndSum(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// MockNotificationRepo mocks repositories.NotificationRepository
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) ListByStudent(ctx context.Context, studentID int64) ([]models.Notification, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepo) MarkRead(ctx context.Context, id, studentID int64) (*models.Notification, error) {
	args := m.Called(ctx, id, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}
