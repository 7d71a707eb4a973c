package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"portfolio-contact-backend/config"
	_ "portfolio-contact-backend/docs" // Important for Swagger
	v1 "portfolio-contact-backend/internal/delivery/http/v1"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/internal/usecase"
	"portfolio-contact-backend/pkg/email"
	"portfolio-contact-backend/pkg/logger"
	"portfolio-contact-backend/pkg/redis"
	"portfolio-contact-backend/pkg/security"
	"portfolio-contact-backend/pkg/server"
	"portfolio-contact-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// @title           Portfolio Contact Backend API
// @version         1.0
// @description     Contact form backend: validates submissions and emails the site owner.
// @host            localhost:5000
// @BasePath        /
func main() {
	startedAt := time.Now()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.Environment, cfg.LogLevel)
	secLog := security.InitSecurityLogger("portfolio-contact-backend", cfg.Environment)
	defer func() { _ = secLog.Sync() }()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Redis (optional, rate limiting falls back to memory)
	if err := redis.Initialize(context.Background(), redis.Config{
		URL:      cfg.RedisURL,
		Password: cfg.RedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer func() { _ = redis.Close() }()

	// 4. Setup Mail Transport
	transport := setupTransport(cfg)

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(
		validation.NewContactValidator(validator.New()),
		email.NewComposer(email.TemplatesFromConfig(cfg)),
		transport,
		secLog,
	)
	healthUC := usecase.NewHealthUsecase(cfg.Environment, startedAt)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 7. Bind, walking up from PORT when it is busy
	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		logger.Log.Error("Invalid PORT", "port", cfg.Port, "error", err)
		os.Exit(1)
	}
	listener, err := server.Listen(context.Background(), "", port, cfg.PortRetryAttempts)
	if err != nil {
		logger.Log.Error("Listen failed", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server running",
			"port", server.Port(listener),
			"environment", cfg.Environment,
			"frontend_url", cfg.FrontendURL,
		)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Serve failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Log.Info("Shutting down gracefully", "signal", sig.String())

	// in flight submissions may be waiting on the mail server
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MailSendTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// setupTransport returns the configured transport, or one that refuses every
// send when credentials are missing.
func setupTransport(cfg *config.Config) domain.MailTransport {
	transport, err := email.NewTransport(cfg)
	if err != nil {
		logger.Log.Warn("Email service not configured, contact form will be unavailable", "error", err)
		return email.Unavailable(err)
	}

	if v, ok := transport.(email.Verifier); ok {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.MailSendTimeout)
		defer cancel()
		if err := v.Verify(ctx); err != nil {
			// keep the transport: the mail server may come back
			logger.Log.Error("Email service verification failed", "provider", cfg.MailProvider, "error", err)
		} else {
			logger.Log.Info("Email service is ready to send messages", "provider", cfg.MailProvider)
		}
	}
	return transport
}
