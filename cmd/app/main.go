package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitalog/vitalog/internal/adapter/api"
	"github.com/vitalog/vitalog/internal/adapter/seed"
	"github.com/vitalog/vitalog/internal/adapter/storage"
	"github.com/vitalog/vitalog/internal/adapter/storage/memorykv"
	"github.com/vitalog/vitalog/internal/adapter/storage/sqlitekv"
	"github.com/vitalog/vitalog/internal/app/auth"
	"github.com/vitalog/vitalog/internal/app/healthstore"
	"github.com/vitalog/vitalog/internal/app/messagebus"
	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/domain"
	"github.com/vitalog/vitalog/internal/domain/entry"
	"github.com/vitalog/vitalog/internal/domain/session"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger := initLogger(cfg)

	bus := messagebus.New(logger)
	bus.Register(session.EventLogin, func(event domain.Event) error {
		e := event.(session.LoginEvent)
		logger.Info("session opened", "email", e.Email)
		return nil
	})
	bus.Register(session.EventLogout, func(event domain.Event) error {
		logger.Info("session closed")
		return nil
	})
	for _, kind := range []string{entry.EventWeightAdded, entry.EventBloodPressureAdded, entry.EventSleepAdded} {
		bus.Register(kind, func(event domain.Event) error {
			e := event.(entry.AddedEvent)
			logger.Info("entry added", "kind", e.Kind, "entry_id", e.EntryID, "date", e.Date)
			return nil
		})
	}

	kv, closeKV := openStorage(cfg)
	defer closeKV()

	provider := seed.New(cfg.Seed.RandomSeed)

	store := healthstore.New(
		storage.NewStateStore(kv),
		provider,
		logger,
		healthstore.WithBus(bus),
		healthstore.WithHistoryDays(cfg.Seed.HistoryDays),
	)
	store.Initialize(context.Background())

	issuer := &auth.Issuer{
		Secret:   cfg.Session.Secret,
		TokenTTL: cfg.Session.TokenTTL,
	}

	server := api.NewServer(
		api.Addr(cfg.Server.Host, cfg.Server.Port),
		api.Logger(logger),
		api.Store(store),
		api.TokenIssuer(issuer),
	)

	ctx := context.Background()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error)

	go func() {
		defer close(errCh)
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server was not shutdown gracefully", "error", err)
		}
	case err := <-errCh:
		if err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server closed with unexpected error", "error", err)
			}
		}
	}

	store.Close()
	bus.Close()
	logger.Info("server shutdown")
}

func openStorage(cfg *config.Config) (storage.KV, func()) {
	switch cfg.Storage.Type {
	case config.StorageMemory:
		return memorykv.New(), func() {}
	default:
		kv, err := sqlitekv.Open(cfg.Storage.Path)
		if err != nil {
			panic("failed to open storage: " + err.Error())
		}
		return kv, func() { _ = kv.Close() }
	}
}

func initLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	switch cfg.App.Env {
	case config.Development:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})
	case config.Production:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		})
	default:
		panic("invalid env")
	}

	return slog.New(handler)
}
