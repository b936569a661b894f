package services

import (
	"context"
	"errors"
	"strings"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/app/repositories"
	"github.com/emre/classpulse/internal/pkg/apperrors"
	"github.com/emre/classpulse/internal/pkg/auth"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type authService struct {
	students   repositories.StudentRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(students repositories.StudentRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		students:   students,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *authService) respondWithToken(student *models.Student) (*dto.AuthResponse, error) {
	token, err := s.jwtService.GenerateToken(student)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Student: student, Token: token}, nil
}

// Register creates a new student account. The repository promotes the first
// registrant to admin inside its transaction; everyone else stays a user.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:    strings.TrimSpace(req.StudentID),
		Name:         strings.TrimSpace(req.Name),
		ClassSection: strings.TrimSpace(req.ClassSection),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Password:     hashed,
		Role:         models.RoleUser,
		Status:       models.StatusActive,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", student.Email).Str("role", string(student.Role)).Msg("Student registered")
	return s.respondWithToken(student)
}

// Login authenticates by email and password. A missing account and a wrong
// password produce the same error so accounts cannot be enumerated.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	student, err := s.students.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.respondWithToken(student)
}

// OAuthLogin finds or creates the student matching an upstream-verified
// provider profile. New accounts get a random throwaway password and blank
// studentId/classSection until the mandatory profile update completes.
func (s *authService) OAuthLogin(ctx context.Context, req *dto.OAuthRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	student, err := s.students.GetByEmail(ctx, email)
	if err == nil {
		return s.respondWithToken(student)
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(uuid.New().String())
	if err != nil {
		return nil, err
	}

	student = &models.Student{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
		Role:     models.RoleUser,
		Status:   models.StatusActive,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Str("provider", req.Provider).Msg("Student created from provider profile")
	return s.respondWithToken(student)
}

// GetProfile returns the stored student record
func (s *authService) GetProfile(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// UpdateProfile applies the self-service mutable fields and re-issues a token
// so the classSection claim follows the change.
func (s *authService) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateProfileRequest) (*dto.AuthResponse, error) {
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
	if validation.HasErrors() {
		return nil, validation
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return s.respondWithToken(student)
}

// UpdatePassword verifies the current password before storing a new hash
func (s *authService) UpdatePassword(ctx context.Context, id int64, req *dto.UpdatePasswordRequest) error {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(student.Password, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	student.Password = hashed

	return s.students.Update(ctx, student)
}

// MandatoryUpdate completes a provider-created profile with the fields the
// provider could not supply. Both fields are required and the student number
// must not belong to anyone else.
func (s *authService) MandatoryUpdate(ctx context.Context, id int64, req *dto.MandatoryUpdateRequest) (*dto.AuthResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	studentID := strings.TrimSpace(req.StudentID)
	classSection := strings.TrimSpace(req.ClassSection)
	if studentID == "" || classSection == "" {
		return nil, apperrors.NewValidationError("all fields are required")
	}

	taken, err := s.students.StudentIDTaken(ctx, studentID, student.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflictError(apperrors.ErrStudentIDAlreadyExists, "studentId")
	}

	student.StudentID = studentID
	student.ClassSection = classSection
	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	return s.respondWithToken(student)
}
