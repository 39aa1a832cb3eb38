package commands

import (
	"github.com/spf13/cobra"

	"github.com/nodelet/nodelet/cmd/nodelet/handlers"
)

// Run returns the command that resolves the configuration and starts the
// node agent.
//
// Configuration precedence, highest first: command-line flags and NODELET_*
// environment variables, the JSON configuration file, compiled-in defaults.
// Resolution happens once at startup; there is no live reload.
func Run() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Resolve the configuration and start the node agent",
		Long: `Resolve the node configuration and start the agent.

Settings may come from flags (or their NODELET_* environment variables), a
JSON configuration file, and built-in defaults, in that order of precedence.
A missing configuration file is fine; a malformed one aborts startup.

Examples:
  # Start with defaults, discovering the node IP via DNS
  nodelet run

  # Start with an explicit config file and a flag override
  nodelet run -c /etc/nodelet/config.json --port 3100

  # Labels from the environment
  NODELET_NODE_LABELS=pool=edge,zone=eu nodelet run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Run(cmd.Context(), flags.configPath, flags.options(cmd))
		},
	}

	flags.register(cmd)

	return cmd
}
