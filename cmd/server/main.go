package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"teaching-server/internal/config"
	"teaching-server/internal/database"
	"teaching-server/internal/engine"
	"teaching-server/internal/handler"
	"teaching-server/internal/langdetect"
	"teaching-server/internal/logger"
	"teaching-server/internal/moderation"
	"teaching-server/internal/repository"
	"teaching-server/internal/service"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()
	zap.ReplaceGlobals(appLogger)

	appLogger.Info("Starting teaching server",
		zap.String("env", cfg.Env),
		zap.String("port", cfg.ServerPort))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()
	appLogger.Info("Connected to PostgreSQL")

	if err := database.ApplyMigrations(cfg.GetDSN()); err != nil {
		appLogger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	appLogger.Info("Database schema is up to date")

	moderator := moderation.NewRegexModerator()
	detector := langdetect.New(langdetect.DefaultCatalogue(), cfg.DefaultLanguage)

	backend, err := engine.NewBackend(cfg, appLogger.Named("Engine"))
	if err != nil {
		appLogger.Fatal("Failed to initialize generation backend", zap.Error(err))
	}
	contentEngine := engine.New(backend, appLogger.Named("Engine"))

	repo := repository.NewPgTeachingRepository(pool, appLogger.Named("Repository"))
	topicService := service.NewTopicService(moderator, detector, contentEngine, repo, appLogger.Named("TopicService"))
	topicHandler := handler.NewTopicHandler(topicService, appLogger.Named("Handler"))

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.GinZapLogger(appLogger.Named("HTTP")))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.GetAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	prom := ginprometheus.NewPrometheus("gin")
	prom.Use(router)

	topicHandler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		appLogger.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
	appLogger.Info("Server stopped")
}
