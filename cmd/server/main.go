package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/live-scoreboard/internal/config"
	"github.com/preston-bernstein/live-scoreboard/internal/logging"
	"github.com/preston-bernstein/live-scoreboard/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "live-scoreboard"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg, logger := bootstrap()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

// bootstrap applies the optional dotenv file before reading config, then
// builds the process logger from it.
func bootstrap() (config.Config, *slog.Logger) {
	loaded, envErr := config.LoadEnvFile(os.Getenv(config.EnvFile))

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	})
	if envErr != nil {
		logging.Warn(logger, "env file ignored", "error", envErr)
	} else if loaded {
		logging.Debug(logger, "env file loaded")
	}
	return cfg, logger
}
