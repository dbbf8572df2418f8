package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/qmexai/ramadandata/internal/app/controllers"
	appMigrations "github.com/qmexai/ramadandata/internal/app/migrations"
	"github.com/qmexai/ramadandata/internal/app/models/dto"
	appRepos "github.com/qmexai/ramadandata/internal/app/repositories"
	appRoutes "github.com/qmexai/ramadandata/internal/app/routes"
	appServices "github.com/qmexai/ramadandata/internal/app/services"
	"github.com/qmexai/ramadandata/internal/config"
	"github.com/qmexai/ramadandata/internal/db"
	appMiddleware "github.com/qmexai/ramadandata/internal/middleware"
	pkgAuth "github.com/qmexai/ramadandata/internal/pkg/auth"
	"github.com/qmexai/ramadandata/internal/pkg/helpers"
	"github.com/qmexai/ramadandata/internal/pkg/logger"
	"github.com/qmexai/ramadandata/internal/seed"
	"github.com/qmexai/ramadandata/internal/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	StudentService    appServices.StudentService
	UserService       appServices.UserService
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	UserController    *appControllers.UserController
	PageController    *appControllers.PageController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	SessionCodec      *pkgAuth.SessionCodec
	Hasher            *pkgAuth.PasswordHasher
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(config.ResolvePath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
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
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	dbPool, err := db.NewPool(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := RunMigrations(ctx, dbPool, lgr); err != nil {
		dbPool.Close()
		return nil, err
	}
	return dbPool, nil
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(dbPool, lgr).Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildServices initializes repositories and services. The admin CLI stops
// here; the HTTP server continues with BuildDependencies.
func BuildServices(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Hasher = pkgAuth.NewPasswordHasher(cfg.Auth.BcryptCost)

	var err error
	deps.SessionCodec, err = pkgAuth.NewSessionCodec(pkgAuth.SessionConfig{
		SecretKey:     cfg.Auth.SessionSecret,
		TTL:           helpers.ParseDuration(cfg.Auth.SessionTTL, pkgAuth.DefaultSessionTTL),
		RefreshWindow: helpers.ParseDuration(cfg.Auth.RefreshWindow, pkgAuth.DefaultSessionTTL/2),
		Issuer:        cfg.Auth.Issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session codec: %w", err)
	}

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.Hasher, lgr)
	return deps, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps, err := BuildServices(cfg, dbPool, lgr)
	if err != nil {
		return nil, err
	}

	account, err := seed.EnsureBootstrap(ctx, deps.UserService, appServices.BootstrapAccount{
		Username:    cfg.Bootstrap.Username,
		Password:    cfg.Bootstrap.Password,
		Name:        cfg.Bootstrap.Name,
		PhoneNumber: cfg.Bootstrap.PhoneNumber,
	}, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare bootstrap account: %w", err)
	}

	if cfg.Auth.LegacyPlaintextMigration {
		lgr.Warn().Msg("Legacy plaintext password migration is enabled")
	}
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Hasher,
		deps.SessionCodec,
		appServices.AuthOptions{
			LegacyPlaintextMigration: cfg.Auth.LegacyPlaintextMigration,
			Bootstrap:                account,
		},
		lgr,
	)

	cookies := appMiddleware.CookieOptions{Secure: cfg.Server.SecureCookies || cfg.IsProduction()}
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionCodec, cookies, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.SessionCodec.TTL(), cookies, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, appControllers.ReportSettings{
		Title:     cfg.App.Name,
		Brand:     cfg.App.Brand,
		Year:      cfg.App.Year,
		CSVStrict: cfg.Export.CSVStrict,
	}, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.PageController = appControllers.NewPageController(appControllers.Branding{
		AppName: cfg.App.Name,
		Brand:   cfg.App.Brand,
		Year:    cfg.App.Year,
	})

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := dto.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())
	router.SetHTMLTemplate(templates)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.UserController,
		deps.PageController,
		deps.AuthMiddleware,
	)

	return router, nil
}
