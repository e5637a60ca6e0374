package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-doctor-directory/config"
	deliveryHttp "go-doctor-directory/internal/delivery/http"
	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	domainRepo "go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/infrastructure/cache"
	"go-doctor-directory/internal/infrastructure/provider"
	"go-doctor-directory/internal/observability/metrics"
	"go-doctor-directory/internal/repository"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const initialLoadTimeout = 30 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	Directory   usecase.DoctorDirectoryUsecase
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.App.LogLevel)
	app.Log.Info("Configuration loaded successfully")

	// Initialize Redis
	if cfg.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		app.Log.Info("Redis connected successfully")
	}

	registry := prometheus.NewRegistry()
	directoryMetrics := metrics.NewDirectoryMetrics(registry)

	app.Directory = initializeDirectory(cfg, app.Log, app.RedisClient, directoryMetrics)
	app.Server = initializeServer(cfg, app.Log, app.Directory, directoryMetrics, registry)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	return logrus.StandardLogger()
}

// initializeDirectory wires the provider client, repositories and directory usecase
func initializeDirectory(cfg *config.Config, log *logrus.Logger, redisClient *redis.Client, m *metrics.DirectoryMetrics) usecase.DoctorDirectoryUsecase {
	providerClient := provider.NewClient(cfg.Provider, log, m)

	var doctorRepo domainRepo.DoctorRepository = repository.NewDoctorRepository(providerClient)
	if redisClient != nil {
		doctorRepo = repository.NewCachedDoctorRepository(doctorRepo, redisClient, cfg.Redis.CacheTTL, log)
	}

	return usecase.NewDoctorDirectoryUsecase(log, doctorRepo, m)
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	directory usecase.DoctorDirectoryUsecase,
	m *metrics.DirectoryMetrics,
	registry *prometheus.Registry,
) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	appointmentUsecase := usecase.NewAppointmentUsecase(log, directory)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directory, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log, m)

	// Initialize router
	router := deliveryHttp.NewRouter(
		doctorHandler,
		appointmentHandler,
		corsMiddleware,
		loggingMiddleware,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		cfg.RateLimit.RequestsPerMinute,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run loads the directory, starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// The initial load failing is not fatal: the API reports the failure and
	// POST /api/v1/doctors/reload retries it.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), initialLoadTimeout)
		defer cancel()
		if err := app.Directory.Load(ctx); err != nil {
			app.Log.Warnf("Initial doctor load failed: %v", err)
		}
	}()

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
