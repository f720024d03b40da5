// Command courtmate loads an NBA career-stats CSV and finds the players
// most similar to a chosen player. It runs either as an HTTP service with
// an embedded dashboard (serve) or as a one-shot query tool (query, stats).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/courtmate/courtmate/internal/config"
	"github.com/courtmate/courtmate/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:           "courtmate",
		Short:         "NBA player similarity tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newQueryCmd(), newStatsCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// setup initializes logging and loads configuration; shared by every
// subcommand.
func setup(ctx context.Context, csvOverride string) (*config.Config, error) {
	if err := logger.Init(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if csvOverride != "" {
		cfg.CSVPath = csvOverride
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	return cfg, nil
}
