package main

import (
	"context"
	"database/sql"
	"errors"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/blog/internal/adapters/handler/http"
	"github.com/vncsmyrnk/blog/internal/adapters/password"
	"github.com/vncsmyrnk/blog/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/blog/internal/adapters/token"
	"github.com/vncsmyrnk/blog/internal/config"
	"github.com/vncsmyrnk/blog/internal/core/services"
	"github.com/vncsmyrnk/blog/internal/logger"
)

// @title                       Blog API
// @version                     1.0
// @description                 Users, posts, tags and categories of the blog.
// @BasePath                    /
// @securityDefinitions.apikey  APIKeyHeader
// @in                          header
// @name                        X-API-KEY
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "text", os.Stderr).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		log.Error("failed to reach database", "error", err)
		os.Exit(1)
	}

	tokens, err := token.NewManager([]byte(cfg.JWTSecret), cfg.JWTAlgorithm, cfg.AccessTokenTTL())
	if err != nil {
		log.Error("failed to configure tokens", "error", err)
		os.Exit(1)
	}
	hasher := password.NewBcryptHasher(cfg.BcryptCost)

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)

	authService := services.NewAuthService(userRepo, hasher, tokens, services.WithAuthLogger(log))
	userService := services.NewUserService(userRepo, hasher)
	postService := services.NewPostService(postRepo, tagRepo, categoryRepo)
	tagService := services.NewTagService(tagRepo, categoryRepo)

	handler := http.NewHandler(http.RouterConfig{
		APIKey:         cfg.APIKey,
		DocsUsername:   cfg.DocsUsername,
		DocsPassword:   cfg.DocsPassword,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         log,
	}, http.Handlers{
		Auth:   http.NewAuthHandler(authService),
		User:   http.NewUserHandler(userService),
		Post:   http.NewPostHandler(postService),
		Tag:    http.NewTagHandler(tagService),
		Bearer: http.NewBearerGuard(authService),
	})
	server := &stdhttp.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
