package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/auth"
	"github.com/245124737105-sketch/PolyglotPal/internal/client"
	"github.com/245124737105-sketch/PolyglotPal/internal/handler"
	"github.com/245124737105-sketch/PolyglotPal/internal/service"
	"github.com/245124737105-sketch/PolyglotPal/internal/storage/cache"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		if cfg.Env != "development" {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		repos, closeStore, err := openStore(ctx, cfg.Store, logger)
		if err != nil {
			logger.Error("failed init store", zap.Error(err))
			return err
		}
		defer closeStore()

		var translations *cache.Cache
		if cfg.Translator.CacheSize > 0 {
			translations = cache.NewCache(cfg.Translator.CacheSize, cfg.Translator.CacheTTL)
		}

		clients, err := client.InitClients(cfg.Translator, translations, logger)
		if err != nil {
			return fmt.Errorf("failed init translation clients: %w", err)
		}

		services := service.InitServices(cfg.Quiz, clients, repos, logger)
		sessions := auth.NewManager(cfg.Auth.SecretKey, cfg.Auth.SessionTTL)

		engine, err := handler.NewHandler(services, sessions, cfg.Auth, logger).InitRoutes()
		if err != nil {
			return err
		}

		srv := handler.NewServer(cfg.HTTP, engine, logger)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case <-ctx.Done():
			logger.Info("received shutdown signal")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		case err := <-errCh:
			return err
		}
	},
}
