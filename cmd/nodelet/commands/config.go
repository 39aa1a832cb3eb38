package commands

import (
	"github.com/spf13/cobra"

	"github.com/nodelet/nodelet/cmd/nodelet/handlers"
)

// Config returns the parent command for configuration inspection.
func Config() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}

	cmd.AddCommand(configShow())

	return cmd
}

// configShow returns the command that prints the configuration exactly as
// `run` would resolve it, without starting the agent.
//
// Optional flags:
//
//	--output, -o: json or yaml; with neither, a styled summary is printed
//	              on a terminal and JSON otherwise
func configShow() *cobra.Command {
	var flags configFlags
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration the agent would run with.

All sources are merged and resolved exactly as they are for 'nodelet run',
so this is the place to check which value wins when flags, environment
variables, and the configuration file disagree.

Examples:
  # Human-readable summary
  nodelet config show

  # Machine-readable output
  nodelet config show -o json
  nodelet config show -o yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Show(cmd.Context(), flags.configPath, flags.options(cmd), output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: json or yaml")

	return cmd
}
