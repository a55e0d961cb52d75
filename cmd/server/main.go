package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/hgroves/togglcon/app"
	"github.com/hgroves/togglcon/internal/logstore"
	"github.com/hgroves/togglcon/internal/service"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	logger := slog.Default()

	dbPath := os.Getenv("TOGGLCON_LOG_DB")
	if dbPath == "" {
		dbPath = "togglcon.db"
	}
	store, err := logstore.OpenSQLite(dbPath)
	if err != nil {
		logger.Error("could not open invocation log store", "path", dbPath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	svcTimesheet := service.NewTimesheet()

	a := app.New(logger, svcTimesheet, store)
	if host := os.Getenv("TOGGLCON_HOST"); host != "" {
		a = a.WithHost(host)
	}
	if port := os.Getenv("TOGGLCON_PORT"); port != "" {
		p, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			logger.Error("invalid TOGGLCON_PORT", "port", port)
			os.Exit(1)
		}
		a = a.WithPort(uint(p))
	}

	// Run the server
	if err := a.Serve(); err != nil {
		fmt.Println(err)
	}
}
