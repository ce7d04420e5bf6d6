package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/football-players-service/internal/config"
	"github.com/preston-bernstein/football-players-service/internal/logging"
	"github.com/preston-bernstein/football-players-service/internal/server"
)

const (
	appName    = "football-players-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Serve the football player collection over HTTP",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("port", "", "HTTP listen port (env PORT, default 9000)")
	flags.String("seed-file", "", "seed data file, .json or .yaml (env SEED_FILE, default players.json)")
	flags.String("log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	return cmd
}

// loadConfig layers flags over the environment, .env and the optional config file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadEnvFiles(); err != nil {
		return config.Config{}, err
	}
	return config.Load(config.WithFlags(cmd.Flags(), map[string]string{
		config.KeyPort:     "port",
		config.KeySeedFile: "seed-file",
		config.KeyLogLevel: "log-level",
	}))
}

func run(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "startup failed", err)
		return err
	}
	srv.Run(ctx, stop)
	return nil
}
