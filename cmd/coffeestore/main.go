package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ragnar-alan/coffeStoreAPI/internal/admin"
	"github.com/ragnar-alan/coffeStoreAPI/internal/config"
	"github.com/ragnar-alan/coffeStoreAPI/internal/notify"
	"github.com/ragnar-alan/coffeStoreAPI/pkg/logger"
)

func main() {
	mode := flag.String("mode", "admin-api", "admin-api | notification-subscriber")
	port := flag.Int("port", 0, "override the configured HTTP port")
	flag.Parse()

	lg, err := logger.NewZapLoggerFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = lg.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		lg.Fatal("failed to load config", logger.Error(err))
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch *mode {
	case "admin-api":
		lg.Info("service started",
			logger.String("service", "admin-api"),
			logger.Int("port", cfg.Server.Port))
		if err := admin.Run(ctx, cfg, lg); err != nil {
			lg.Fatal("fatal", logger.Error(err))
		}
	case "notification-subscriber":
		lg.Info("service started", logger.String("service", "notification-subscriber"))
		if err := notify.Run(ctx, cfg, lg); err != nil {
			lg.Fatal("fatal", logger.Error(err))
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode must be admin-api or notification-subscriber")
		os.Exit(2)
	}
}
