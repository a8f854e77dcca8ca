package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/blog/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/blog/internal/config"
	"github.com/vncsmyrnk/blog/internal/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: migrations [up|down|status|version|redo|reset]")
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	log := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found")
	}

	// Only the database settings are needed here, not the API secrets.
	pg, err := env.ParseAs[config.Postgres]()
	if err != nil {
		log.Error("failed to parse database config", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", pg.DSN())
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Command(context.Background(), db, command, log); err != nil {
		log.Error("migration failed", "command", command, "error", err)
		os.Exit(1)
	}
}
