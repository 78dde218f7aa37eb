package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"route-descriptor/internal/config"
	"route-descriptor/internal/database"
	"route-descriptor/internal/logger"
	"route-descriptor/internal/server"
	"route-descriptor/internal/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewNamed(cfg.AppEnv, "route-descriptor")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = database.GetDBPath()
		if err != nil {
			return fmt.Errorf("failed to resolve database path: %w", err)
		}
	}

	store, err := sqlite.New(dbPath, log.Named("sqlite"))
	if err != nil {
		return fmt.Errorf("failed to open graph store: %w", err)
	}

	srv := server.New(server.Config{
		Addr:          cfg.Addr,
		Descriptor:    cfg.Descriptor,
		TransactionID: cfg.TransactionID,
		Release:       cfg.AppEnv == "production",
	}, store, log)

	actualAddr, err := srv.Start()
	if err != nil {
		store.Close()
		return fmt.Errorf("failed to start server: %w", err)
	}

	log.Info("route descriptor ready",
		zap.String("addr", actualAddr),
		zap.String("db", store.GetDBPath()),
		zap.String("trailing", string(cfg.Descriptor.Trailing)),
	)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	sig := <-shutdown
	log.Info("received signal, starting graceful shutdown", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not gracefully shutdown the server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
