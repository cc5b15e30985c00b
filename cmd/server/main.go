package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-tenant-api/internal/config"
	"github.com/goliatone/go-tenant-api/internal/httpapi"
	"github.com/goliatone/go-tenant-api/pkg/di"
	"github.com/goliatone/go-tenant-api/storage"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(log); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := storage.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	if err := storage.CreateSchema(ctx, db); err != nil {
		return err
	}
	if cfg.Seed {
		if err := storage.Seed(ctx, db); err != nil {
			return err
		}
	}

	container, err := di.NewContainer(db, cfg.Cache)
	if err != nil {
		return err
	}

	server := httpapi.New(container, log)

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", cfg.Addr))
		errc <- server.Start(cfg.Addr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
