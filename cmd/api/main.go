package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/providesk/helpdesk-gateway/internal/api/http"
	"github.com/providesk/helpdesk-gateway/internal/api/http/handlers"
	"github.com/providesk/helpdesk-gateway/internal/client"
	"github.com/providesk/helpdesk-gateway/internal/config"
	"github.com/providesk/helpdesk-gateway/internal/observability"
	"github.com/providesk/helpdesk-gateway/internal/session"
	"github.com/providesk/helpdesk-gateway/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	sessions := session.NewStore(cfg.Session, logger)
	defer sessions.Close()

	storage, err := upload.NewMinioStorage(cfg.Storage)
	if err != nil {
		logger.Fatal("failed to connect object storage", zap.Error(err))
	}

	api := client.New(cfg.Upstream, logger)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, sessions),
		Auth:    handlers.NewAuthHandler(api, sessions),
		Options: handlers.NewOptionsHandler(api),
		Tickets: handlers.NewTicketsHandler(api, storage, cfg.Storage.UploadPathPrefix, metrics, logger),
		Session: session.NewMiddleware(sessions),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
