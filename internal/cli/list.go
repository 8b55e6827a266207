package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Load the events and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			t, err := openTerminal(cfg)
			if err != nil {
				return err
			}
			return runList(cmd, t, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")
	return cmd
}

func runList(cmd *cobra.Command, t *terminal, output string) error {
	if err := validateOutput(output); err != nil {
		return err
	}
	loadErr := t.ready(cmd.Context())
	if err := t.render(output); err != nil {
		return err
	}
	return loadErr
}
