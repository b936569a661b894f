// Package bootstrap wires configuration, storage and HTTP dependencies.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emre/classpulse/internal/app/controllers"
	appMigrations "github.com/emre/classpulse/internal/app/migrations"
	appRepos "github.com/emre/classpulse/internal/app/repositories"
	appRoutes "github.com/emre/classpulse/internal/app/routes"
	appServices "github.com/emre/classpulse/internal/app/services"
	"github.com/emre/classpulse/internal/config"
	"github.com/emre/classpulse/internal/db"
	appMiddleware "github.com/emre/classpulse/internal/middleware"
	"github.com/emre/classpulse/internal/observability"
	pkgAuth "github.com/emre/classpulse/internal/pkg/auth"
	"github.com/emre/classpulse/internal/pkg/helpers"
	"github.com/emre/classpulse/internal/pkg/logger"
	"github.com/emre/classpulse/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	PointService           appServices.PointService
	StatsService           appServices.StatsService
	AdminService           appServices.AdminService
	NotificationService    appServices.NotificationService
	AuthController         *appControllers.AuthController
	PointController        *appControllers.PointController
	StatsController        *appControllers.StatsController
	AdminController        *appControllers.AdminController
	NotificationController *appControllers.NotificationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
	SentryFlush            func()
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the optional bootstrap admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied")

	students := appRepos.NewStudentRepository(dbPool)
	if err := seed.CreateDefaultData(ctx, students, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	flush, err := observability.InitSentry(cfg.Sentry.DSN, cfg.Sentry.Environment, "")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize error reporting: %w", err)
	}
	deps.SentryFlush = flush

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.Students, deps.JWTService, lgr)
	deps.PointService = appServices.NewPointService(deps.Repos.Points, lgr)
	deps.StatsService = appServices.NewStatsService(deps.Repos.Points)
	deps.AdminService = appServices.NewAdminService(deps.Repos.Students, lgr)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.Notifications)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.Students)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.PointController = appControllers.NewPointController(deps.PointService, lgr)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, lgr)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, dbPool *pgxpool.Pool, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.PointController,
		deps.StatsController,
		deps.AdminController,
		deps.NotificationController,
		deps.AuthMiddleware,
		dbPool,
	)

	return router
}
