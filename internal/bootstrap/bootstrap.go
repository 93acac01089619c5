package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/calwells/degreeplanner/internal/app/auth"
	appControllers "github.com/calwells/degreeplanner/internal/app/controllers"
	appMigrations "github.com/calwells/degreeplanner/internal/app/migrations"
	appRepos "github.com/calwells/degreeplanner/internal/app/repositories"
	appRoutes "github.com/calwells/degreeplanner/internal/app/routes"
	appServices "github.com/calwells/degreeplanner/internal/app/services"
	"github.com/calwells/degreeplanner/internal/config"
	"github.com/calwells/degreeplanner/internal/db"
	appMiddleware "github.com/calwells/degreeplanner/internal/middleware"
	pkgAuth "github.com/calwells/degreeplanner/internal/pkg/auth"
	"github.com/calwells/degreeplanner/internal/pkg/logger"
	"github.com/calwells/degreeplanner/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService       *appServices.UserService
	PlannerService    *appServices.PlannerService
	PlanService       *appServices.PlanService
	UserController    *appControllers.UserController
	PlannerController *appControllers.PlannerController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	AccessResolver    *appAuth.AccessResolver
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default catalog.
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// A partially seeded catalog is usable; log and continue.
		lgr.Error().Err(err).Msg("Failed to seed default catalog, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AccessResolver = appAuth.NewAccessResolver(deps.Repos.UserRepository)

	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.JWTService)
	deps.PlannerService = appServices.NewPlannerService(
		deps.Repos.UserRepository,
		deps.Repos.PlanRepository,
		deps.Repos.CourseRepository,
		deps.Repos.AccomplishmentRepository,
	)
	deps.PlanService = appServices.NewPlanService(
		deps.Repos.UserRepository,
		deps.Repos.PlanRepository,
		deps.Repos.AccomplishmentRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.PlannerController = appControllers.NewPlannerController(
		deps.AccessResolver,
		deps.PlannerService,
		deps.PlanService,
		lgr,
	)

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

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.PlannerController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
