package cli

import (
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event and print the resulting list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			t, err := openTerminal(cfg)
			if err != nil {
				return err
			}
			return runAdd(cmd, t, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")
	return cmd
}

// runAdd loads the list first, like a page would, then submits the title.
// A failed load does not stop the submit. The output format is checked before
// anything is sent.
func runAdd(cmd *cobra.Command, t *terminal, title, output string) error {
	if err := validateOutput(output); err != nil {
		return err
	}
	_ = t.ready(cmd.Context())
	submitErr := t.submit(cmd.Context(), title)
	if err := t.render(output); err != nil {
		return err
	}
	return submitErr
}
