package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fuzumoe/watercrawl-datasource/configs"
	"github.com/fuzumoe/watercrawl-datasource/internal/handler"
	"github.com/fuzumoe/watercrawl-datasource/internal/repository"
	"github.com/fuzumoe/watercrawl-datasource/internal/server"
	"github.com/fuzumoe/watercrawl-datasource/internal/service"
	"github.com/fuzumoe/watercrawl-datasource/internal/watercrawl"
)

// hookable functions for dependency injection
var (
	LoadConfig  = configs.Load
	NewDB       = repository.NewDB
	MigrateDB   = repository.Migrate
	StartServer = func(r *gin.Engine, addr string) error { return r.Run(addr) }
)

// Run loads config, opens the DB, runs migrations, wires the datasource
// services, and serves the host-facing API.
func Run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config load error: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger init error: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := NewDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}

	if err := MigrateDB(db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	client := watercrawl.New(cfg.WatercrawlAPIKey,
		watercrawl.WithBaseURL(cfg.WatercrawlBaseURL),
		watercrawl.WithHTTPClient(httpClient),
		watercrawl.WithLogger(logger),
	)

	jobRepo := repository.NewCrawlJobRepo(db)
	crawlService := service.NewCrawlService(client, jobRepo, cfg.PollInterval, cfg.PollTimeout, logger)
	providerService := service.NewProviderService(watercrawl.New,
		watercrawl.WithHTTPClient(httpClient),
		watercrawl.WithLogger(logger),
	)
	jobService := service.NewJobService(jobRepo)
	healthService := service.NewHealthService(db, "watercrawl-datasource")

	gin.SetMode(cfg.ServerMode)
	r := gin.New()
	server.RegisterRoutes(r, cfg.PluginSecret,
		[]server.RouteRegistrar{
			handler.NewHealthHandler(healthService),
		},
		[]server.RouteRegistrar{
			handler.NewDatasourceHandler(crawlService, providerService),
			handler.NewJobHandler(jobService),
		},
	)

	addr := cfg.ServerHost + ":" + cfg.ServerPort
	logger.Info("starting server", zap.String("addr", addr))
	return StartServer(r, addr)
}

// newLogger builds a production zap logger at the configured level.
func newLogger(level string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
