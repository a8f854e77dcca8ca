package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/blog/internal/adapters/password"
	"github.com/vncsmyrnk/blog/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/blog/internal/config"
	"github.com/vncsmyrnk/blog/internal/core/ports"
	"github.com/vncsmyrnk/blog/internal/core/services"
	"github.com/vncsmyrnk/blog/internal/logger"
)

func main() {
	var name, email, pass string
	flag.StringVar(&name, "name", "", "Login name")
	flag.StringVar(&email, "email", "", "Email address")
	flag.StringVar(&pass, "password", os.Getenv("CREATEUSER_PASSWORD"), "Password (defaults to $CREATEUSER_PASSWORD)")
	flag.Parse()

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userService := services.NewUserService(postgres.NewUserRepository(db), password.NewBcryptHasher(cfg.BcryptCost))
	user, err := userService.Create(ctx, ports.CreateUserInput{
		Name:     name,
		Email:    email,
		Password: pass,
	})
	if err != nil {
		log.Error("failed to create user", "error", err)
		os.Exit(1)
	}

	log.Info("user created", "user_id", user.ID, "email", user.Email)
}
