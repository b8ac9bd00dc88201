package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-pestcontrol-web/config"
	_ "go-pestcontrol-web/docs" // Important for Swagger
	"go-pestcontrol-web/internal/content"
	v1 "go-pestcontrol-web/internal/delivery/http/v1"
	"go-pestcontrol-web/internal/domain"
	"go-pestcontrol-web/internal/repository/postgres"
	"go-pestcontrol-web/internal/slideshow"
	"go-pestcontrol-web/internal/usecase"
	"go-pestcontrol-web/pkg/database"
	"go-pestcontrol-web/pkg/email"
	"go-pestcontrol-web/pkg/logger"
	"go-pestcontrol-web/pkg/redis"
	"go-pestcontrol-web/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Al-Ameen Pest Control API
// @version         1.0
// @description     Contact and content backend for the Al-Ameen Pest Control website.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting pest control web server", "port", cfg.Port)

	// 3. Setup Database (optional: the site renders without it, the
	// contact form just stops persisting)
	var contactRepo domain.ContactRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		contactRepo = postgres.NewContactRepository(dbPool)
	}

	// 4. Setup Redis (rate limiting falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - submissions will not be forwarded")
	}

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	catalog := content.NewCatalog()
	contactUC := usecase.NewContactUsecase(contactRepo, emailService, validate, cfg.WhatsAppHandle)
	contentUC := usecase.NewContentUsecase(catalog)

	// 7. Start the hero carousel
	hero := slideshow.New(len(catalog.HeroImages()))
	hero.Start()

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ContentUC: contentUC,
		Hero:      hero,
		Config:    cfg,
	})

	// 9. Start Server
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

	hero.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
