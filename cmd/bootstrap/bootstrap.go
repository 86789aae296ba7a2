package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kryptamyr/Packer-Tracker/config"
	deliveryHttp "github.com/Kryptamyr/Packer-Tracker/internal/delivery/http"
	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/http/handler"
	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/http/middleware"
	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/http/view"
	"github.com/Kryptamyr/Packer-Tracker/internal/domain/repository"
	"github.com/Kryptamyr/Packer-Tracker/internal/infrastructure/cache"
	"github.com/Kryptamyr/Packer-Tracker/internal/infrastructure/database"
	repositoryImpl "github.com/Kryptamyr/Packer-Tracker/internal/repository"
	"github.com/Kryptamyr/Packer-Tracker/internal/service"
	"github.com/Kryptamyr/Packer-Tracker/internal/usecase"
	"github.com/Kryptamyr/Packer-Tracker/pkg/jwt"
	"github.com/Kryptamyr/Packer-Tracker/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	Log          *logrus.Logger
	DB           *gorm.DB
	RedisClient  *redis.Client
	Server       *http.Server
	LegacyImport usecase.LegacyImportUsecase

	orderRepo repository.PackerOrderRepository
}

// New creates an App with every dependency of the web server initialized
func New(envFile string) (*App, error) {
	app, err := newCore(envFile)
	if err != nil {
		return nil, err
	}

	// Initialize Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	redisClient, err := cache.NewRedisClient(ctx, app.Config.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.Log.Info("Redis connected successfully")

	server, err := app.initializeServer()
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// newCore loads configuration, sets up logging, and opens the migrated
// database. It is all the import-legacy command needs.
func newCore(envFile string) (*App, error) {
	cfg, err := config.LoadConfigFrom(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	app := &App{
		Config: cfg,
		Log:    setupLogger(cfg.App.LogLevel),
	}
	app.Log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.Migrate(db); err != nil {
		app.Close()
		return nil, err
	}
	app.Log.Info("Database connected successfully")

	app.orderRepo = repositoryImpl.NewPackerOrderRepository(db)
	app.LegacyImport = usecase.NewLegacyImportUsecase(app.Log, app.orderRepo)

	return app, nil
}

// setupLogger configures the standard logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() (*http.Server, error) {
	cfg := app.Config

	// Initialize services
	sessionService := jwt.NewSessionService(cfg.Session)
	flashService := service.NewFlashService(app.RedisClient, app.Log, cfg.Session.FlashTTL)
	customValidator := validator.NewValidator()

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize usecases
	orderUsecase := usecase.NewPackerOrderUsecase(app.Log, app.orderRepo, cfg.Orders.RecentLimit)

	// Initialize handlers
	pageHandler := handler.NewPageHandler(orderUsecase, flashService, renderer, app.Log)
	packerOrderHandler := handler.NewPackerOrderHandler(orderUsecase, customValidator)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessionService, app.Log, cfg.App.IsProduction())
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(pageHandler, packerOrderHandler, sessionMiddleware, corsMiddleware)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run migrates legacy data if needed, starts the HTTP server and handles
// graceful shutdown
func (app *App) Run() error {
	migrated, err := app.LegacyImport.MigrateIfNeeded(context.Background(), app.Config.Orders.LegacyDataFile)
	if err != nil {
		app.Log.Errorf("Legacy data migration failed: %v", err)
	} else if migrated {
		app.Log.Info("Legacy data migration complete")
	}

	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal or a failed listener
	return app.waitForShutdown(errCh)
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown(errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

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
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
