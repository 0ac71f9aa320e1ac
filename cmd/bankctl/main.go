package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/kwabena-osei/bankledger/internal/cli"
	"github.com/kwabena-osei/bankledger/internal/config"
	"github.com/kwabena-osei/bankledger/internal/ledger"
	"github.com/kwabena-osei/bankledger/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Init("bankctl", cfg.LogLevel, cfg.AppEnv)

	registry := ledger.NewRegistry(decimal.NewFromFloat(cfg.InterestRate))
	shell := cli.NewShell(registry, os.Stdin, os.Stdout, cfg.Currency)

	ctx := logging.WithLogger(context.Background(), logger)
	if err := shell.Run(ctx); err != nil {
		slog.Error("shell exited with error", "error", err)
		os.Exit(1)
	}
}
