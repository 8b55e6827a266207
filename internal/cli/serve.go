package cli

import (
	"github.com/klokku/eventboard/internal/app"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the events page",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}
	return application.Run(cmd.Context())
}
