package main

import (
	"fmt"
	"os"

	"github.com/245124737105-sketch/PolyglotPal/internal/config"
	"github.com/spf13/cobra"
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

var rootCmd = &cobra.Command{
	Use:           "polyglotpal",
	Short:         "Language learning web app: translations, quizzes and progress tracking",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// bootstrap loads the configuration and the logger shared by every command.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, nil, fmt.Errorf("failed load config: %w", err)
	}

	return cfg, setupLogger(cfg.Env), nil
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
