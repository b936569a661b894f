// Package services contains the application business logic.
package services

import (
	"context"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/models/dto"
)

// AuthService handles registration, login and profile self-service
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	OAuthLogin(ctx context.Context, req *dto.OAuthRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, id int64) (*models.Student, error)
	UpdateProfile(ctx context.Context, id int64, req *dto.UpdateProfileRequest) (*dto.AuthResponse, error)
	UpdatePassword(ctx context.Context, id int64, req *dto.UpdatePasswordRequest) error
	MandatoryUpdate(ctx context.Context, id int64, req *dto.MandatoryUpdateRequest) (*dto.AuthResponse, error)
}

// PointService handles the engagement point ledger
type PointService interface {
	Award(ctx context.Context, caller *models.Student, req *dto.AwardPointRequest) (*dto.AwardPointResponse, error)
	History(ctx context.Context, studentID int64, filters dto.HistoryFilters) ([]models.EngagementPoint, error)
	Edit(ctx context.Context, caller *models.Student, id int64, req *dto.UpdatePointRequest) (*models.EngagementPoint, error)
	Remove(ctx context.Context, caller *models.Student, id int64) (*models.EngagementPoint, error)
}

// StatsService computes derived views over the ledger without mutating it
type StatsService interface {
	Leaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error)
	Sections(ctx context.Context) (map[string]int, error)
	TopContributors(ctx context.Context) ([]dto.Contributor, error)
	Statistics(ctx context.Context) (*dto.StatisticsResponse, error)
}

// AdminService handles student moderation
type AdminService interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	DeleteStudent(ctx context.Context, id int64) (*models.Student, error)
	ChangeRole(ctx context.Context, id int64, role models.Role) (*models.Student, error)
	ChangeStatus(ctx context.Context, id int64, status models.Status) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
}

// NotificationService handles the per-student notification log
type NotificationService interface {
	List(ctx context.Context, studentID int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, studentID int64) (*models.Notification, error)
}
