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

	_ "github.com/varunm/batchswap/docs" // Import generated swagger docs
	appControllers "github.com/varunm/batchswap/internal/app/controllers"
	appMigrations "github.com/varunm/batchswap/internal/app/migrations"
	appRepos "github.com/varunm/batchswap/internal/app/repositories"
	appRoutes "github.com/varunm/batchswap/internal/app/routes"
	appServices "github.com/varunm/batchswap/internal/app/services"
	"github.com/varunm/batchswap/internal/config"
	"github.com/varunm/batchswap/internal/db"
	appMiddleware "github.com/varunm/batchswap/internal/middleware"
	"github.com/varunm/batchswap/internal/pkg/logger"
	"github.com/varunm/batchswap/internal/pkg/metrics"
	"github.com/varunm/batchswap/internal/pkg/session"
	"github.com/varunm/batchswap/internal/pkg/websocket"
	"github.com/varunm/batchswap/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Services          *appServices.Services
	SessionStore      session.Store
	Metrics           *metrics.Metrics
	Registry          *websocket.Registry
	WSHandler         *websocket.Handler
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	SwapController    *appControllers.SwapController
	ChatController    *appControllers.ChatController
	SessionMiddleware *appMiddleware.SessionMiddleware
	Logger            zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Sample data only outside production
	if strings.ToLower(cfg.Server.Mode) != "production" {
		if err := seed.CreateSampleStudents(context.Background(), dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create sample data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// SetupSessionStore builds the configured session store.
func SetupSessionStore(cfg *config.Config, lgr zerolog.Logger) (session.Store, error) {
	switch cfg.Session.Store {
	case "redis":
		store, err := session.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.SessionTTL())
		if err != nil {
			lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
			return nil, err
		}
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis session store ready")
		return store, nil
	default:
		lgr.Info().Msg("Using in-memory session store")
		return session.NewMemoryStore(cfg.SessionTTL()), nil
	}
}

// BuildDependencies initializes repositories, services, controllers and the
// websocket plumbing.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	sessionStore, err := SetupSessionStore(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup session store: %w", err)
	}
	deps.SessionStore = sessionStore

	deps.Services = appServices.NewServices(cfg, deps.Repos, sessionStore, lgr)

	deps.Metrics = metrics.New()
	deps.Registry = websocket.NewRegistry()
	deps.WSHandler = websocket.NewHandler(
		deps.Registry,
		deps.Repos.StudentRepository,
		deps.Services.ChatService,
		deps.Metrics,
		lgr,
	)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.Services.AuthService, cfg.Session.CookieName)

	secureCookies := strings.ToLower(cfg.Server.Mode) == "production"
	deps.AuthController = appControllers.NewAuthController(
		deps.Services.AuthService,
		cfg.Session.CookieName,
		int(cfg.SessionTTL().Seconds()),
		secureCookies,
	)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.SwapController = appControllers.NewSwapController(deps.Services.SwapService)
	deps.ChatController = appControllers.NewChatController(deps.Services.ChatService)

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
	router.Use(appMiddleware.Metrics(deps.Metrics))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.SwapController,
		deps.ChatController,
		deps.WSHandler,
		deps.SessionMiddleware,
		deps.Metrics,
	)

	return router
}
