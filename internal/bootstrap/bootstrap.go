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

	appControllers "github.com/2403A51L17/SESD-Project/internal/app/controllers"
	appMigrations "github.com/2403A51L17/SESD-Project/internal/app/migrations"
	appRepos "github.com/2403A51L17/SESD-Project/internal/app/repositories"
	appRoutes "github.com/2403A51L17/SESD-Project/internal/app/routes"
	appServices "github.com/2403A51L17/SESD-Project/internal/app/services"
	"github.com/2403A51L17/SESD-Project/internal/config"
	"github.com/2403A51L17/SESD-Project/internal/db"
	appMiddleware "github.com/2403A51L17/SESD-Project/internal/middleware"
	pkgAuth "github.com/2403A51L17/SESD-Project/internal/pkg/auth"
	"github.com/2403A51L17/SESD-Project/internal/pkg/filestorage"
	"github.com/2403A51L17/SESD-Project/internal/pkg/logger"
	"github.com/2403A51L17/SESD-Project/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	ProfileService     appServices.ProfileService
	MaterialService    appServices.MaterialService
	AuthController     *appControllers.AuthController
	ProfileController  *appControllers.ProfileController
	MaterialController *appControllers.MaterialController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	SessionService     *pkgAuth.SessionService
	FileStorage        *filestorage.LocalStorage
	Logger             zerolog.Logger
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
// optionally seeds demo accounts.
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
	migrator := appMigrations.NewMigrator(database)

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

	if cfg.Server.SeedDemo {
		if err := seed.CreateDemoAccounts(context.Background(), database.Pool, lgr); err != nil {
			// Seeding is a convenience, not a startup requirement
			lgr.Error().Err(err).Msg("Failed to create demo accounts, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey: cfg.Session.Secret,
		Duration:  cfg.SessionDuration(),
		Issuer:    cfg.Session.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.Repos.MentorRepository,
		deps.SessionService,
		lgr,
	)
	deps.ProfileService = appServices.NewProfileService(
		deps.Repos.StudentRepository,
		deps.Repos.MentorRepository,
		deps.Repos.MaterialRepository,
	)
	deps.MaterialService = appServices.NewMaterialService(
		deps.Repos.MaterialRepository,
		deps.FileStorage,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionService, cfg.Session.CookieName)

	sessionMaxAge := int(cfg.SessionDuration().Seconds())
	deps.AuthController = appControllers.NewAuthController(
		deps.AuthService,
		cfg.Session.CookieName,
		sessionMaxAge,
		lgr,
	)
	deps.ProfileController = appControllers.NewProfileController(
		deps.ProfileService,
		deps.SessionService,
		cfg.Session.CookieName,
	)
	deps.MaterialController = appControllers.NewMaterialController(deps.MaterialService, lgr)

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
		deps.AuthController,
		deps.ProfileController,
		deps.MaterialController,
		deps.AuthMiddleware,
	)

	return router
}
