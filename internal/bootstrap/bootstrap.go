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
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campusworks/placementcell/internal/app/controllers"
	appMigrations "github.com/campusworks/placementcell/internal/app/migrations"
	appRepos "github.com/campusworks/placementcell/internal/app/repositories"
	appRoutes "github.com/campusworks/placementcell/internal/app/routes"
	appServices "github.com/campusworks/placementcell/internal/app/services"
	"github.com/campusworks/placementcell/internal/config"
	"github.com/campusworks/placementcell/internal/db"
	appMiddleware "github.com/campusworks/placementcell/internal/middleware"
	pkgAuth "github.com/campusworks/placementcell/internal/pkg/auth"
	"github.com/campusworks/placementcell/internal/pkg/filestorage"
	"github.com/campusworks/placementcell/internal/pkg/helpers"
	"github.com/campusworks/placementcell/internal/pkg/logger"
	"github.com/campusworks/placementcell/internal/pkg/mailer"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	JobService            *appServices.JobService
	ApplicationService    *appServices.ApplicationService
	StudentService        *appServices.StudentService
	ContactService        *appServices.ContactService
	PagesController       *appControllers.PagesController
	AuthController        *appControllers.AuthController
	ContactController     *appControllers.ContactController
	JobController         *appControllers.JobController
	ApplicationController *appControllers.ApplicationController
	StudentController     *appControllers.StudentController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Mailer                mailer.Mailer
	ResumeStore           filestorage.ResumeStore
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file is honored when present so local setups can keep secrets out
// of the shell profile.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Could not load .env file")
	}

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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	resumeStore, err := filestorage.NewLocalStorage(cfg.Storage.ResumePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize resume storage")
		return nil, fmt.Errorf("failed to initialize resume storage: %w", err)
	}
	deps.ResumeStore = resumeStore

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Session.Secret,
		TokenExp:    helpers.ParseDuration(cfg.Session.Expiration, 12*time.Hour),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.Mailer = mailer.NewMailjetMailer(mailer.Config{
		APIKey:    cfg.Mail.APIKey,
		APISecret: cfg.Mail.APISecret,
		FromEmail: cfg.Mail.Sender,
		FromName:  "Placement Cell",
		Endpoint:  cfg.Mail.Endpoint,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.AccountRepository,
		deps.Repos.StudentRepository,
		deps.ResumeStore,
		deps.JWTService,
		lgr,
	)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository, lgr)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.StudentRepository,
		deps.Repos.JobRepository,
		deps.Mailer,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.JobRepository,
		deps.Repos.ApplicationRepository,
	)
	deps.ContactService = appServices.NewContactService(deps.Repos.ContactRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.PagesController = appControllers.NewPagesController()
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ContactController = appControllers.NewContactController(deps.ContactService)
	deps.JobController = appControllers.NewJobController(deps.JobService, lgr)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.ResumeStore, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.PagesController,
		deps.AuthController,
		deps.ContactController,
		deps.JobController,
		deps.ApplicationController,
		deps.StudentController,
		deps.AuthMiddleware,
	)

	return router
}
