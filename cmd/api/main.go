package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/loqeyusa/housingsupport/internal/access"
	"github.com/loqeyusa/housingsupport/internal/audit"
	auditStore "github.com/loqeyusa/housingsupport/internal/audit/store"
	"github.com/loqeyusa/housingsupport/internal/auth"
	authStore "github.com/loqeyusa/housingsupport/internal/auth/store"
	"github.com/loqeyusa/housingsupport/internal/client"
	clientStore "github.com/loqeyusa/housingsupport/internal/client/store"
	"github.com/loqeyusa/housingsupport/internal/config"
	"github.com/loqeyusa/housingsupport/internal/database"
	"github.com/loqeyusa/housingsupport/internal/events"
	"github.com/loqeyusa/housingsupport/internal/finance"
	financeStore "github.com/loqeyusa/housingsupport/internal/finance/store"
	hsHttp "github.com/loqeyusa/housingsupport/internal/http"
	authHandler "github.com/loqeyusa/housingsupport/internal/http/auth"
	clientHandler "github.com/loqeyusa/housingsupport/internal/http/client"
	exportHandler "github.com/loqeyusa/housingsupport/internal/http/export"
	financeHandler "github.com/loqeyusa/housingsupport/internal/http/finance"
	importHandler "github.com/loqeyusa/housingsupport/internal/http/importcsv"
	reportHandler "github.com/loqeyusa/housingsupport/internal/http/report"
	"github.com/loqeyusa/housingsupport/internal/importer"
	"github.com/loqeyusa/housingsupport/internal/logger"
	"github.com/loqeyusa/housingsupport/internal/period"
	"github.com/loqeyusa/housingsupport/internal/report"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.Setup(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(cfg.ConnectionString()); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		trail          = audit.NewRecorder(auditStore.New(db), logger.For(logger.ComponentAudit))
		tokens         = auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		authService    = auth.NewService(authStore.New(db), tokens)
		clientService  = client.NewService(clientStore.New(db), trail)
		gate           = access.NewGate(clientService)
		financeService = finance.NewService(financeStore.New(db), gate, trail, period.NewWindow(cfg.EditWindow())).
				WithLogger(logger.For(logger.ComponentFinance))
		reportService = report.NewService(clientService, financeService, gate)
		importService = importer.NewService(clientService, financeService).
				WithLogger(logger.For(logger.ComponentImport))
	)

	if cfg.EventsEnabled() {
		publisher, err := events.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			log.Error("failed to connect to broker", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()

		publisher.WithLogger(logger.For(logger.ComponentEvents))

		financeService.WithNotifier(publisher)
		log.Info("publishing month changes", "exchange", cfg.AMQP.Exchange, "queue", cfg.AMQP.Queue)
	} else {
		log.Warn("AMQP_URL not set, pool fund snapshots will not refresh")
	}

	router := hsHttp.New(hsHttp.Handlers{
		Auth:    authHandler.NewHandler(authService),
		Clients: clientHandler.NewHandler(clientService, reportService),
		Finance: financeHandler.NewHandler(financeService),
		Reports: reportHandler.NewHandler(reportService),
		Export:  exportHandler.NewHandler(reportService),
		Import:  importHandler.NewHandler(importService),
	}, authService, cfg.Origins())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", "addr", srv.Addr, "app", cfg.App.Name)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
