package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shelftalk/shelftalk/config"
	_ "github.com/shelftalk/shelftalk/docs"
	"github.com/shelftalk/shelftalk/internal/api"
	"github.com/shelftalk/shelftalk/internal/api/handler"
	"github.com/shelftalk/shelftalk/internal/auth"
	"github.com/shelftalk/shelftalk/internal/repository"
	"github.com/shelftalk/shelftalk/internal/service"
	"github.com/shelftalk/shelftalk/pkg/database"
	"github.com/shelftalk/shelftalk/pkg/logger"
	"github.com/shelftalk/shelftalk/pkg/tracing"
)

// @title ShelfTalk API
// @version 1.0
// @description Book-review community backend.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Fatal("sentry init", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg)
	if err != nil {
		logger.Fatal("tracing init", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	var denylist auth.Denylist
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("redis ping", zap.Error(err))
		}
		denylist = auth.NewRedisDenylist(rdb)
	} else {
		logger.Warn("redis not configured, token revocation is process-local")
		denylist = auth.NewMemoryDenylist()
	}
	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, denylist)

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	bookRepo := repository.NewBookRepository(db)
	threadRepo := repository.NewThreadRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	accounts := service.NewAccountService(userRepo, followRepo)
	books := service.NewBookService(bookRepo)
	community := service.NewCommunityService(threadRepo, commentRepo, likeRepo, userRepo, bookRepo)

	h := handler.New(accounts, books, community, tokens)
	router := api.NewRouter(cfg, h, tokens)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("http server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
