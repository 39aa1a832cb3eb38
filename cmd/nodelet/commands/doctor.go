package commands

import (
	"github.com/spf13/cobra"

	"github.com/nodelet/nodelet/cmd/nodelet/handlers"
)

// Doctor returns the command for diagnosing the node configuration.
//
// Doctor resolves the configuration the same way `run` does and then runs
// advisory checks on the result: DNS-1123 conformance of the node name and
// labels, and presence of the data directory, bootstrap file, and TLS
// material. Findings are warnings only; the command fails only when
// resolution itself fails.
//
// Optional flags:
//
//	--json: Output findings in JSON format
func Doctor() *cobra.Command {
	var flags configFlags
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the resolved node configuration",
		Long: `Diagnose the configuration the agent would run with.

Checks performed:
  - node name and node labels against Kubernetes naming rules
  - data directory existence
  - bootstrap file presence
  - TLS certificate and key presence

Findings are advisory: resolution stays lenient (the node name sanitizer
only lowercases, malformed label tokens are dropped), and doctor is where
the leftovers become visible.

Examples:
  # Diagnose the default configuration
  nodelet doctor

  # Diagnose a specific file with an override
  nodelet doctor -c /etc/nodelet/config.json --node-name edge-7

  # Get findings in JSON format
  nodelet doctor --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), flags.configPath, flags.options(cmd), jsonOutput)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
