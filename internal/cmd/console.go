package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/console"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Manage the inventory from an interactive menu",
	Args:  cobra.NoArgs,
	RunE:  runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// stdout belongs to the menu
	log := newLogger(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	menu := console.New(newManager(cfg, log), cmd.InOrStdin(), out, cfg.RecentOperations, log)

	// Run blocks on stdin, so an interrupt has to be observed here.
	done := make(chan error, 1)
	go func() { done <- menu.Run(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		fmt.Fprintln(out, "\n\nProgram interrupted by user. Exiting...")
		return nil
	}
}
