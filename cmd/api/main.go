package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"corecrm/internal/config"
	"corecrm/internal/database"
	"corecrm/internal/handlers"
	"corecrm/internal/middleware"
	"corecrm/internal/repositories"
	"corecrm/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments configure through the environment
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Wiring
	customerRepo := repositories.NewCustomerRepository(db)
	metrics := services.NewPrometheusMetrics()
	customerLogger := services.NewCustomerLogger(logger)
	customerService := services.NewCustomerService(customerRepo, customerLogger, metrics, cfg.List.PageSize)
	exportService := services.NewExportService(customerRepo, customerLogger, metrics)

	customerHandler := handlers.NewCustomerHandler(customerService, exportService, customerLogger, metrics)
	healthHandler := handlers.NewHealthCheckHandler(db)
	docsHandler := handlers.NewDocsHandler()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/docs", docsHandler.ServeScalarUI)
	e.GET("/docs/swagger.json", docsHandler.ServeOAS3JSON)

	customerHandler.RegisterRoutes(e)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(db, customerRepo)
		devHandler.RegisterRoutes(e)
		slog.Info("Development endpoints enabled under /api/dev")
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Starting server",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"page_size", cfg.List.PageSize,
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		if closeErr := sqlDB.Close(); closeErr != nil {
			slog.Error("Failed to close database connection", "error", closeErr)
		}
	}

	slog.Info("Server stopped")
}
