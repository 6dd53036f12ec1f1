package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-healthcare-records/config"
	deliveryHttp "go-healthcare-records/internal/delivery/http"
	"go-healthcare-records/internal/delivery/http/handler"
	"go-healthcare-records/internal/delivery/http/middleware"
	domainRepo "go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/infrastructure/cache"
	"go-healthcare-records/internal/infrastructure/database"
	"go-healthcare-records/internal/repository"
	"go-healthcare-records/internal/service"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/jwt"
	"go-healthcare-records/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Store       *database.Store
	RedisClient *redis.Client
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
	log := setupLogger(cfg.Log)
	log.Info("Configuration loaded successfully")

	// Initialize in-memory store
	store := database.NewStore()
	if cfg.App.SeedSampleData {
		database.Seed(store, log)
	}
	app.Store = store

	// Initialize session store
	sessionRepo, redisClient, err := newSessionRepository(context.Background(), cfg, log)
	if err != nil {
		return nil, err
	}
	app.RedisClient = redisClient
	log.Infof("Session store: %s", cfg.Session.Store)

	// Initialize all layers
	registry := newMetricsRegistry()
	app.Server = initializeServer(cfg, log, store, sessionRepo, registry)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
		log.Warnf("Unknown log level %q, using info", cfg.Level)
	}
	log.SetLevel(level)

	return log
}

// newSessionRepository picks the session backend. The redis client is returned so it can be closed on shutdown.
func newSessionRepository(ctx context.Context, cfg *config.Config, log *logrus.Logger) (domainRepo.SessionRepository, *redis.Client, error) {
	if cfg.Session.Store != config.SessionStoreRedis {
		return repository.NewMemorySessionRepository(), nil, nil
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return repository.NewRedisSessionRepository(redisClient), redisClient, nil
}

func newMetricsRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	store *database.Store,
	sessionRepo domainRepo.SessionRepository,
	registry *prometheus.Registry,
) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.Session)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(store)
	patientRepo := repository.NewPatientRepository(store)
	doctorRepo := repository.NewDoctorRepository(store)
	medicalRecordRepo := repository.NewMedicalRecordRepository(store)
	appointmentRepo := repository.NewAppointmentRepository(store)

	// Initialize services
	sessionAuthority := service.NewSessionAuthority(log, sessionRepo, jwtService)
	auditService := service.NewAuditService(log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(store, log, userRepo, patientRepo, sessionAuthority, auditService)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, patientRepo, medicalRecordRepo, auditService)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(log, medicalRecordRepo, doctorRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, patientRepo, doctorRepo, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	medicalRecordHandler := handler.NewMedicalRecordHandler(medicalRecordUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	facilityHandler := handler.NewFacilityHandler()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(sessionAuthority)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS)
	requestLogMiddleware := middleware.NewRequestLogMiddleware(log)
	metricsMiddleware := middleware.NewMetricsMiddleware(registry)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		doctorHandler,
		medicalRecordHandler,
		appointmentHandler,
		facilityHandler,
		authMiddleware,
		corsMiddleware,
		requestLogMiddleware,
		metricsMiddleware,
		registry,
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

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases external connections. The in-memory store is dropped with the process.
func (app *App) Close() {
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			logrus.Warnf("Failed to close Redis client: %v", err)
		}
	}
}
