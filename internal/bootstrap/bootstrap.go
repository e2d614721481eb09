package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/mergington/internal/app/controllers"
	appRepos "github.com/yigit/mergington/internal/app/repositories"
	appRoutes "github.com/yigit/mergington/internal/app/routes"
	appServices "github.com/yigit/mergington/internal/app/services"
	"github.com/yigit/mergington/internal/config"
	appMiddleware "github.com/yigit/mergington/internal/middleware"
	"github.com/yigit/mergington/internal/pkg/logger"
	"github.com/yigit/mergington/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *appRepos.Repositories
	ActivityService    appServices.ActivityService
	ActivityController *appControllers.ActivityController
	Logger             zerolog.Logger
}

// DefaultConfigPath is used when CONFIG_PATH is not set
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", DefaultConfigPath)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: logger.ParseFormat(cfg.Logging.Format),
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupRoster creates the activity store and seeds it.
func SetupRoster(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, error) {
	repos := appRepos.NewRepositories()
	if err := seed.CreateDefaultData(ctx, repos.ActivityRepository, cfg.Roster.Path, lgr); err != nil {
		return nil, err
	}
	if err := appServices.PublishRoster(ctx, repos.ActivityRepository); err != nil {
		lgr.Warn().Err(err).Msg("Failed to publish roster metrics")
	}
	return repos, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(repos *appRepos.Repositories, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	svcs := appServices.NewServices(repos, lgr)
	deps.ActivityService = svcs.ActivityService
	deps.ActivityController = appControllers.NewActivityController(deps.ActivityService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if strings.ToLower(cfg.Server.Mode) == "test" {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))

	// Swagger UI is only served outside production
	if !cfg.IsProduction() {
		appRoutes.SetupSwagger(router)
	}

	if cfg.Metrics.Enabled {
		appRoutes.SetupMetrics(router, cfg.Metrics.Path)
		lgr.Info().Str("path", cfg.Metrics.Path).Msg("Metrics endpoint enabled")
	}

	appRoutes.SetupRouter(router, deps.ActivityController)

	return router
}
