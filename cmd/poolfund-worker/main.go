package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/loqeyusa/housingsupport/internal/audit"
	auditStore "github.com/loqeyusa/housingsupport/internal/audit/store"
	"github.com/loqeyusa/housingsupport/internal/config"
	"github.com/loqeyusa/housingsupport/internal/database"
	"github.com/loqeyusa/housingsupport/internal/events"
	"github.com/loqeyusa/housingsupport/internal/finance"
	financeStore "github.com/loqeyusa/housingsupport/internal/finance/store"
	"github.com/loqeyusa/housingsupport/internal/logger"
	"github.com/loqeyusa/housingsupport/internal/period"
	"github.com/loqeyusa/housingsupport/internal/poolfund"
	poolfundStore "github.com/loqeyusa/housingsupport/internal/poolfund/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.Setup(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}).
		With(logger.FieldComponent, logger.ComponentWorker)

	if !cfg.EventsEnabled() {
		log.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// The worker only reads months, so it runs without an access guard.
	var (
		trail     = audit.NewRecorder(auditStore.New(db), log)
		finances  = finance.NewService(financeStore.New(db), nil, trail, period.NewWindow(cfg.EditWindow()))
		refresher = poolfund.NewRefresher(finances, poolfundStore.New(db))
	)

	consumer, err := events.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
	if err != nil {
		log.Error("failed to connect to broker", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	consumer.WithLogger(logger.For(logger.ComponentEvents))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("consuming month changes", "queue", cfg.AMQP.Queue)

	err = consumer.Consume(ctx, func(ctx context.Context, msg *events.MonthChanged) error {
		snap, err := refresher.Refresh(ctx, msg.ClientMonthID)
		if errors.Is(err, finance.ErrNotFound) {
			log.Warn("month no longer exists", "client_month_id", msg.ClientMonthID)
			return nil
		}

		if err != nil {
			return err
		}

		log.Debug("snapshot refreshed",
			"client_month_id", snap.ClientMonthID,
			"included", snap.PoolAmount != nil,
		)

		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("consumer stopped", "error", err)
		os.Exit(1)
	}

	log.Info("worker stopped")
}
