package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"parchelector/database"
	"parchelector/internal/cache"
	"parchelector/internal/config"
	"parchelector/internal/http-api/handler"
	"parchelector/internal/http-api/middleware"
	"parchelector/internal/http-api/repository"
	"parchelector/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	} else {
		logger.Warn("REDIS_ADDR not set, trending cache disabled")
	}
	trendingCache := cache.NewTrendingCache(redisClient, cfg.CacheTTL)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	resetTokenRepo := repository.NewResetTokenRepository(db)
	bookRepo := repository.NewBookRepository(db)
	readingStatusRepo := repository.NewReadingStatusRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	reviewLikeRepo := repository.NewReviewLikeRepository(db)
	reviewCommentRepo := repository.NewReviewCommentRepository(db)
	listRepo := repository.NewListRepository(db)
	listBookRepo := repository.NewListBookRepository(db)
	listLikeRepo := repository.NewListLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)
	authorFollowRepo := repository.NewAuthorFollowRepository(db)

	// Services
	mailer := service.NewMailer(cfg, logger)
	authService := service.NewAuthService(userRepo, refreshTokenRepo, resetTokenRepo, mailer, cfg)
	bookService := service.NewBookService(bookRepo, readingStatusRepo, favoriteRepo, reviewRepo, trendingCache)
	reviewService := service.NewReviewService(reviewRepo, reviewLikeRepo, reviewCommentRepo, bookRepo, userRepo)
	listService := service.NewListService(listRepo, listBookRepo, listLikeRepo, bookRepo)
	socialService := service.NewSocialService(userRepo, followRepo, authorFollowRepo, bookRepo, reviewRepo, listRepo, listLikeRepo)
	userService := service.NewUserService(userRepo, followRepo, bookService)
	activityService := service.NewActivityService(reviewRepo, readingStatusRepo, reviewService, listService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authLimiter := middleware.NewRateLimiter(5, 10).Middleware()

	api := r.Group("/api")
	handler.NewAuthHandler(authService, userService, activityService).RegisterRoutes(api, authLimiter)
	handler.NewBookHandler(bookService, authService).RegisterRoutes(api)
	handler.NewListHandler(listService, authService).RegisterRoutes(api)
	handler.NewReviewHandler(reviewService, authService).RegisterRoutes(api)
	handler.NewSocialHandler(socialService, authService).RegisterRoutes(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
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

	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
