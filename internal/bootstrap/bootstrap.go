package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/eduadvisor/backoffice/internal/app/controllers"
	appMigrations "github.com/eduadvisor/backoffice/internal/app/migrations"
	appRepos "github.com/eduadvisor/backoffice/internal/app/repositories"
	"github.com/eduadvisor/backoffice/internal/app/repositories/memstore"
	appRoutes "github.com/eduadvisor/backoffice/internal/app/routes"
	appServices "github.com/eduadvisor/backoffice/internal/app/services"
	"github.com/eduadvisor/backoffice/internal/config"
	"github.com/eduadvisor/backoffice/internal/db"
	appMiddleware "github.com/eduadvisor/backoffice/internal/middleware"
	pkgAuth "github.com/eduadvisor/backoffice/internal/pkg/auth"
	"github.com/eduadvisor/backoffice/internal/pkg/llm"
	"github.com/eduadvisor/backoffice/internal/pkg/logger"
	"github.com/eduadvisor/backoffice/internal/pkg/validation"
	"github.com/eduadvisor/backoffice/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Stores *appRepos.Stores

	CredentialService appServices.CredentialService
	InquiryService    appServices.InquiryService
	ReportService     appServices.ReportService
	CallService       appServices.CallService
	AdmissionService  appServices.AdmissionService
	AdminService      appServices.AdminService
	AdvisorService    appServices.AdvisorService
	CatalogService    appServices.CatalogService
	ExportService     appServices.ExportService

	InquiryController    *appControllers.InquiryController
	ConsultantController *appControllers.ConsultantController
	AdminController      *appControllers.AdminController
	AdvisorController    *appControllers.AdvisorController
	CatalogController    *appControllers.CatalogController
	HealthController     *appControllers.HealthController

	Logger zerolog.Logger
}

// Database is the persistence gateway selected by configuration.
type Database struct {
	Stores *appRepos.Stores
	// Close releases the connection pool; a no-op for the memory driver.
	Close func()
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
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

// SetupDatabase opens the configured store and, for Postgres, runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*Database, error) {
	if cfg.UsesMemoryStore() {
		lgr.Warn().Msg("Using in-memory store; records will not survive a restart")
		return &Database{Stores: memstore.New(), Close: func() {}}, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := appMigrations.NewMigrator(database.Pool).Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return &Database{Stores: appRepos.NewPostgresStores(database.Pool), Close: database.Close}, nil
}

// BuildDependencies initializes services and controllers and loads the startup data.
func BuildDependencies(cfg *config.Config, stores *appRepos.Stores, lgr zerolog.Logger) (*Dependencies, error) {
	llmTimeout, err := time.ParseDuration(cfg.LLM.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid LLM timeout: %w", err)
	}
	if cfg.LLM.APIKey == "" {
		lgr.Warn().Msg("LLM API key not configured; advisor chat will return errors")
	}

	completer := llm.NewClient(llm.Config{
		APIKey:     cfg.LLM.APIKey,
		BaseURL:    cfg.LLM.BaseURL,
		Model:      cfg.LLM.Model,
		Timeout:    llmTimeout,
		MaxRetries: uint64(cfg.LLM.MaxRetries),
	})
	secret := pkgAuth.NewSharedSecret(cfg.Admin.Password, cfg.Admin.PasswordHash)

	deps := buildDependencies(stores, secret, completer, lgr)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := seed.CreateDefaultData(ctx, stores.Catalog, deps.CredentialService, cfg.Consultants.SeedFile, lgr); err != nil {
		// Startup continues; the affected endpoints report their own errors.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return deps, nil
}

func buildDependencies(stores *appRepos.Stores, secret *pkgAuth.SharedSecret, completer appServices.Completer, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Stores: stores, Logger: lgr}

	deps.CredentialService = appServices.NewCredentialService(stores.Consultants)
	deps.InquiryService = appServices.NewInquiryService(stores.Inquiries)
	deps.ReportService = appServices.NewReportService(stores.Reports, stores.Calls, deps.CredentialService)
	deps.CallService = appServices.NewCallService(stores.Calls, deps.CredentialService)
	deps.AdmissionService = appServices.NewAdmissionService(stores.Admissions, deps.CredentialService)
	deps.AdminService = appServices.NewAdminService(secret, stores)
	deps.AdvisorService = appServices.NewAdvisorService(completer)
	deps.CatalogService = appServices.NewCatalogService(stores.Catalog)
	deps.ExportService = appServices.NewExportService(stores)

	deps.InquiryController = appControllers.NewInquiryController(deps.InquiryService)
	deps.ConsultantController = appControllers.NewConsultantController(
		deps.CredentialService,
		deps.ReportService,
		deps.CallService,
		deps.AdmissionService,
	)
	deps.AdminController = appControllers.NewAdminController(
		deps.AdminService,
		deps.CredentialService,
		deps.ReportService,
		deps.CallService,
		deps.AdmissionService,
		deps.ExportService,
	)
	deps.AdvisorController = appControllers.NewAdvisorController(deps.AdvisorService)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.HealthController = appControllers.NewHealthController(stores.Health)

	return deps
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

	if err := validation.Register(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	timeout, err := time.ParseDuration(cfg.Server.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	return newRouter(cfg.Server.CORSOrigins, timeout, deps), nil
}

func newRouter(origins []string, timeout time.Duration, deps *Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(),
		appMiddleware.Metrics(),
		cors.New(corsConfig(origins)),
		appMiddleware.Timeout(timeout),
	)

	appRoutes.SetupRouter(router,
		deps.InquiryController,
		deps.ConsultantController,
		deps.AdminController,
		deps.AdvisorController,
		deps.CatalogController,
		deps.HealthController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
