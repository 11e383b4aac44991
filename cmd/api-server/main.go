package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kecyverse/skill-swap-platform/database"
	"github.com/Kecyverse/skill-swap-platform/internal/config"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/handler"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/middleware"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/repository"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/service"
	"github.com/Kecyverse/skill-swap-platform/internal/invalidation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	log := newLogger(cfg)
	slog.SetDefault(log)

	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Cache invalidation is best effort: if redis is unreachable the API
	// still serves, pages are just never told to refresh early.
	var views invalidation.Invalidator
	redisViews, err := invalidation.NewRedisInvalidator(cfg.RedisAddr, cfg.RedisPassword, log)
	if err != nil {
		log.Warn("redis unavailable, view invalidation disabled", "error", err)
		views = invalidation.Noop{}
	} else {
		views = redisViews
		defer redisViews.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	swapRepo := repository.NewSwapRequestRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	txManager := repository.NewTxManager(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	swapService := service.NewSwapService(swapRepo, userRepo, views)
	feedbackService := service.NewFeedbackService(txManager, ratingRepo, views)
	profileService := service.NewProfileService(userRepo, skillRepo, views)
	directoryService := service.NewDirectoryService(userRepo)
	adminService := service.NewAdminService(userRepo, swapRepo, skillRepo, views)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	swapHandler := handler.NewSwapHandler(swapService, feedbackService)
	profileHandler := handler.NewProfileHandler(profileService)
	directoryHandler := handler.NewDirectoryHandler(directoryService, feedbackService)
	adminHandler := handler.NewAdminHandler(adminService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// public surface
	authHandler.RegisterRoutes(api)
	directoryHandler.RegisterRoutes(api)

	// authenticated surface
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))
	swapHandler.RegisterRoutes(authed)
	profileHandler.RegisterRoutes(authed)

	// admin surface
	admin := authed.Group("")
	admin.Use(middleware.RequireAdmin())
	adminHandler.RegisterRoutes(admin)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("http api server listening", "port", cfg.HTTPPort, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
	log.Info("server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
