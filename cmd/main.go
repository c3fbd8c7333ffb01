package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanRulev/kotoba.git/internal/bot"
	"github.com/DanRulev/kotoba.git/internal/config"
	"github.com/DanRulev/kotoba.git/internal/repository"
	"github.com/DanRulev/kotoba.git/internal/router"
	"github.com/DanRulev/kotoba.git/internal/service"
	"github.com/DanRulev/kotoba.git/internal/storage/cache"
	"github.com/DanRulev/kotoba.git/internal/storage/db"
	"github.com/DanRulev/kotoba.git/internal/tui"
	"github.com/DanRulev/kotoba.git/pkg/validator"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := initServices(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed init services", zap.Error(err))
	}

	switch cfg.Host {
	case "telegram":
		err = runTelegram(ctx, cfg, services, logger)
	case "http":
		err = runHTTP(ctx, cfg, services, logger)
	default:
		err = runTUI(ctx, services, logger)
	}
	if err != nil {
		logger.Fatal("host stopped", zap.String("host", cfg.Host), zap.Error(err))
	}
}

// initServices loads the deck once, from the database when configured.
func initServices(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*service.Service, error) {
	loadCtx, cancel := context.WithTimeout(ctx, cfg.App.Timeout)
	defer cancel()

	if cfg.Dataset.Source != "db" {
		return service.InitServices(loadCtx, nil, logger)
	}

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		return nil, err
	}
	// The deck is read once; nothing queries the database after startup.
	defer conn.Close()

	repos := repository.NewRepository(conn)
	return service.InitServices(loadCtx, repos, logger)
}

func runTelegram(ctx context.Context, cfg *config.Config, services *service.Service, logger *zap.Logger) error {
	sessions := cache.NewCache()
	go sessions.RunSweeper(ctx, cfg.Session.SweepInterval, cfg.Session.TTL, logger)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, sessions, logger)
	if err != nil {
		return err
	}

	handler.Start(ctx)
	return nil
}

func runHTTP(ctx context.Context, cfg *config.Config, services *service.Service, logger *zap.Logger) error {
	validator.Setup()

	sessions := cache.NewCache()
	go sessions.RunSweeper(ctx, cfg.Session.SweepInterval, cfg.Session.TTL, logger)

	r := router.SetupRouter(cfg.HTTP, cfg.Session, sessions, services, router.NewHandlers(services, logger), logger)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           r,
		ReadHeaderTimeout: cfg.App.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	defer cancel()

	logger.Info("shutting down http server")
	return srv.Shutdown(shutdownCtx)
}

func runTUI(ctx context.Context, services *service.Service, logger *zap.Logger) error {
	h, err := services.NewHost()
	if err != nil {
		return err
	}
	return tui.Run(ctx, h, logger)
}
