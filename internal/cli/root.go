package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/klokku/eventboard/internal/config"
	"github.com/spf13/cobra"
)

var configPath string

// rootCmd runs the web surface when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "eventboard",
	Short: "List and add events on a remote Event Service",
	Long: `eventboard is a small client for an Event Service exposing GET and POST /events.
It serves a web page listing the events with a form to add new ones, and offers
the same operations from the terminal.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the configuration file")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newAddCmd())
}

func loadConfig() (config.Application, error) {
	return config.Load(configPath)
}
