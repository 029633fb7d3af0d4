package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zentherasoft-backend/config"
	_ "zentherasoft-backend/docs" // Important for Swagger
	v1 "zentherasoft-backend/internal/delivery/http/v1"
	"zentherasoft-backend/internal/usecase"
	"zentherasoft-backend/pkg/captcha"
	"zentherasoft-backend/pkg/email"
	"zentherasoft-backend/pkg/logger"
	"zentherasoft-backend/pkg/redis"
)

// @title           ZentheraSoft Contact API
// @version         1.0
// @description     Backend for the ZentheraSoft studio website contact form.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact backend", "port", cfg.Port)

	// 3. Setup Redis (optional, rate limiting falls back to in-memory)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
		}
	}
	defer redis.Close()

	// 4. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Resend API key missing - contact submissions will be rejected")
	}

	// 5. Setup Captcha Verifier
	verifier := captcha.NewVerifier(cfg.RecaptchaSecretKey)
	if verifier.Mode() == captcha.ModeDisabled {
		logger.Log.Warn("reCAPTCHA secret not configured - captcha gate disabled")
	}

	// 6. Setup UseCases
	contactUC := usecase.NewContactUsecase(emailService, verifier)

	// 7. Setup Router (gin picks up GIN_MODE from the environment itself)
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
