// Package main is the entry point for the themectl CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/zapponejosh/daythemes/internal/cli"
	"github.com/zapponejosh/daythemes/internal/config"
	"github.com/zapponejosh/daythemes/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	logger.Setup(cfg)

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
