package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/inventory"
	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/pkg/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	flagPort     string
	flagLogLevel string
	flagNoSeed   bool
)

var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Product inventory tracker",
	Long: `Inventory keeps products, pending orders and an undo log in memory.

It can serve the inventory over a JSON HTTP API or drive it from an
interactive console menu. State lasts for the lifetime of the process.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPort, "port", "", "HTTP port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&flagNoSeed, "no-seed", false, "start with an empty inventory")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies command line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Server.Port = flagPort
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("no-seed") {
		cfg.SeedSampleData = !flagNoSeed
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}
	return cfg, nil
}

// newManager builds the process-wide inventory, seeded unless disabled
func newManager(cfg *config.Config, log *slog.Logger) *inventory.Manager {
	manager := inventory.NewManager()
	if cfg.SeedSampleData {
		n := inventory.Seed(manager)
		log.Info("sample products loaded", "count", n)
	}
	return manager
}

func newLogger(w io.Writer, level string) *slog.Logger {
	log := logger.NewWithWriter(w, level)
	slog.SetDefault(log)
	return log
}
