package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/internal/api/middleware"
	"github.com/linskybing/gigboard/internal/api/routes"
	"github.com/linskybing/gigboard/internal/application"
	"github.com/linskybing/gigboard/internal/config"
	"github.com/linskybing/gigboard/internal/config/db"
	"github.com/linskybing/gigboard/internal/cron"
	"github.com/linskybing/gigboard/internal/realtime"
	"github.com/linskybing/gigboard/internal/repository"
	"github.com/linskybing/gigboard/pkg/minio"
	"github.com/linskybing/gigboard/pkg/moderation"
)

// @title Gigboard API
// @version 1.0
// @description Freelance marketplace: jobs, proposals, hiring, contracts and chat.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	filter, err := moderation.LoadFilter(config.ModerationFile)
	if err != nil {
		log.Fatalf("Failed to load moderation rules: %v", err)
	}
	log.Printf("Moderation deny-list: %d keywords", len(filter.Keywords()))

	deps := application.Deps{
		Broker: realtime.NewHub(),
		Filter: filter,
	}

	// Uploads are optional; the rest of the API works without object storage.
	store, err := minio.New(ctx, minio.Config{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		Bucket:    config.MinioBucket,
		UseSSL:    config.MinioUseSSL,
		PublicURL: config.MinioPublicURL,
	})
	if err != nil {
		log.Printf("Warning: object storage unavailable, uploads disabled: %v", err)
	} else {
		deps.Store = store
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, deps)

	// Start background tasks
	cron.StartCleanupTask(ctx, services.Audit, config.AuditRetentionDays, 24*time.Hour)

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, services, repos)

	srv := &http.Server{
		Addr:    ":" + config.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
