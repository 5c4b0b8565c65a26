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

	appControllers "github.com/ets-hub/etshub-backend/internal/app/controllers"
	appMigrations "github.com/ets-hub/etshub-backend/internal/app/migrations"
	appRepos "github.com/ets-hub/etshub-backend/internal/app/repositories"
	appRoutes "github.com/ets-hub/etshub-backend/internal/app/routes"
	appServices "github.com/ets-hub/etshub-backend/internal/app/services"
	"github.com/ets-hub/etshub-backend/internal/config"
	"github.com/ets-hub/etshub-backend/internal/db"
	appMiddleware "github.com/ets-hub/etshub-backend/internal/middleware"
	pkgAuth "github.com/ets-hub/etshub-backend/internal/pkg/auth"
	"github.com/ets-hub/etshub-backend/internal/pkg/filestorage"
	"github.com/ets-hub/etshub-backend/internal/pkg/formrelay"
	"github.com/ets-hub/etshub-backend/internal/pkg/helpers"
	"github.com/ets-hub/etshub-backend/internal/pkg/logger"
	"github.com/ets-hub/etshub-backend/internal/pkg/videofeed"
	"github.com/ets-hub/etshub-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	AuthController         *appControllers.AuthController
	EventController        *appControllers.EventController
	JobController          *appControllers.JobController
	ApplicationController  *appControllers.ApplicationController
	VolunteerController    *appControllers.VolunteerController
	RegistrationController *appControllers.RegistrationController
	MediaController        *appControllers.MediaController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.S3Storage
	FormRelay      *formrelay.Relay
	VideoFeed      *videofeed.Client
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations,
// and seeds the bootstrap admin account.
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
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.ApplyDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultAdmin(ctx, dbPool, cfg.Seed, lgr); err != nil {
		// A failed seed is not fatal: an existing deployment already
		// has its admin accounts.
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.FormRelay = formrelay.New(cfg.FormRelay.Endpoint)
	deps.VideoFeed = videofeed.New(videofeed.Config{
		APIKey:    cfg.Videos.APIKey,
		ChannelID: cfg.Videos.ChannelID,
		BaseURL:   cfg.Videos.BaseURL,
	})

	// Media storage is optional: without a bucket the upload endpoint
	// answers 502 instead of failing startup.
	if cfg.Media.Bucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		storage, err := filestorage.NewS3Storage(ctx, filestorage.Config{
			Endpoint:     cfg.Media.Endpoint,
			Region:       cfg.Media.Region,
			Bucket:       cfg.Media.Bucket,
			AccessKey:    cfg.Media.AccessKey,
			SecretKey:    cfg.Media.SecretKey,
			BaseURL:      cfg.Media.BaseURL,
			Prefix:       cfg.Media.Prefix,
			UsePathStyle: cfg.Media.PathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize media storage: %w", err)
		}
		deps.FileStorage = storage
	} else {
		lgr.Warn().Msg("Media storage not configured, uploads disabled")
	}

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FormRelay)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.EventController = appControllers.NewEventController(deps.Services.EventService)
	deps.JobController = appControllers.NewJobController(deps.Services.JobService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.Services.ApplicationService)
	deps.VolunteerController = appControllers.NewVolunteerController(deps.Services.VolunteerService)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.Services.RegistrationService)
	deps.MediaController = appControllers.NewMediaController(deps.FileStorage, deps.VideoFeed)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS(cfg.Server.AllowedOrigin))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.EventController,
		deps.JobController,
		deps.ApplicationController,
		deps.VolunteerController,
		deps.RegistrationController,
		deps.MediaController,
		deps.AuthMiddleware,
	)

	return router
}
