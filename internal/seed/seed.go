// Package seed creates optional bootstrap data after migrations.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/repositories"
	"github.com/emre/classpulse/internal/config"
	"github.com/emre/classpulse/internal/pkg/apperrors"
	"github.com/emre/classpulse/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// CreateDefaultData provisions the configured bootstrap admin account. With no
// bootstrap credentials configured, the first registrant becomes admin instead.
func CreateDefaultData(ctx context.Context, students repositories.StudentRepository, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Bootstrap.AdminEmail == "" || cfg.Bootstrap.AdminPassword == "" {
		lgr.Debug().Msg("No bootstrap admin configured, skipping seed")
		return nil
	}

	if _, err := students.GetByEmail(ctx, cfg.Bootstrap.AdminEmail); err == nil {
		lgr.Debug().Str("email", cfg.Bootstrap.AdminEmail).Msg("Bootstrap admin already exists")
		return nil
	} else if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return fmt.Errorf("failed to check bootstrap admin: %w", err)
	}

	hashed, err := auth.HashPassword(cfg.Bootstrap.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	name := cfg.Bootstrap.AdminName
	if name == "" {
		name = "Administrator"
	}

	admin := &models.Student{
		Name:     name,
		Email:    cfg.Bootstrap.AdminEmail,
		Password: hashed,
		Role:     models.RoleAdmin,
		Status:   models.StatusActive,
	}
	if err := students.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	lgr.Info().Str("email", admin.Email).Msg("Bootstrap admin created")
	return nil
}
