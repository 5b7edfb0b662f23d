package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply SQL migrations or create MongoDB indexes for the configured store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		_, closeStore, err := openStore(cmd.Context(), cfg.Store, logger)
		if err != nil {
			logger.Error("migration failed", zap.String("driver", cfg.Store.Driver), zap.Error(err))
			return err
		}
		closeStore()

		logger.Info("store is up to date", zap.String("driver", cfg.Store.Driver))
		return nil
	},
}
