package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/joinwork/joinwork/internal/app/controllers"
	appRepos "github.com/joinwork/joinwork/internal/app/repositories"
	appRoutes "github.com/joinwork/joinwork/internal/app/routes"
	appServices "github.com/joinwork/joinwork/internal/app/services"
	"github.com/joinwork/joinwork/internal/config"
	appMiddleware "github.com/joinwork/joinwork/internal/middleware"
	pkgAuth "github.com/joinwork/joinwork/internal/pkg/auth"
	"github.com/joinwork/joinwork/internal/pkg/logger"
	"github.com/joinwork/joinwork/internal/seed"
	"github.com/joinwork/joinwork/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	GraduateService       *appServices.GraduateService
	CompanyService        *appServices.CompanyService
	JobService            *appServices.JobService
	ApplicationService    *appServices.ApplicationService
	WorkshopService       *appServices.WorkshopService
	AuthController        *appControllers.AuthController
	GraduateController    *appControllers.GraduateController
	CompanyController     *appControllers.CompanyController
	JobController         *appControllers.JobController
	ApplicationController *appControllers.ApplicationController
	WorkshopController    *appControllers.WorkshopController
	AdminController       *appControllers.AdminController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
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

// SetupStore connects to the document store and seeds default data.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (store.Store, error) {
	lgr.Info().Str("projectID", cfg.Firestore.ProjectID).Msg("Connecting to document store...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := store.NewFirestoreStore(ctx, store.FirestoreConfig{
		ProjectID:       cfg.Firestore.ProjectID,
		CredentialsFile: cfg.Firestore.CredentialsFile,
		CredentialsJSON: cfg.Firestore.CredentialsJSON,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to document store")
		return nil, err
	}
	lgr.Info().Msg("Document store connection established.")

	repos := appRepos.NewRepositories(s, lgr)
	if err := seed.CreateDefaultData(context.Background(), repos, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return s, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, s store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(s, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.GraduateRepository,
		deps.Repos.CompanyRepository,
		deps.JWTService,
		lgr,
	)
	deps.GraduateService = appServices.NewGraduateService(
		deps.Repos.GraduateRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.CompanyService = appServices.NewCompanyService(
		deps.Repos.CompanyRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.JobService = appServices.NewJobService(
		deps.Repos.JobRepository,
		deps.Repos.CompanyRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.GraduateRepository,
		deps.Repos.UserRepository,
		deps.CompanyService,
		lgr,
	)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.JobRepository,
		deps.Repos.CompanyRepository,
		lgr,
	)
	deps.WorkshopService = appServices.NewWorkshopService(deps.Repos.WorkshopRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.GraduateController = appControllers.NewGraduateController(deps.GraduateService, lgr)
	deps.CompanyController = appControllers.NewCompanyController(deps.CompanyService, lgr)
	deps.JobController = appControllers.NewJobController(deps.JobService, lgr)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, lgr)
	deps.WorkshopController = appControllers.NewWorkshopController(deps.WorkshopService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.Repos, lgr)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.GraduateController,
		deps.CompanyController,
		deps.JobController,
		deps.ApplicationController,
		deps.WorkshopController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
