package commands

import (
	"github.com/spf13/cobra"

	"github.com/nodelet/nodelet/cmd/nodelet/handlers"
)

// Init returns the command for creating a starter configuration file.
//
// On a terminal this runs an interactive wizard asking for the most common
// settings; otherwise a minimal file is written with defaults.
//
// Flags:
//
//	--output, -o: Path to the output file (default "$HOME/.nodelet/config/config.json")
//	--force, -f: Overwrite an existing file
func Init() *cobra.Command {
	var (
		outputPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration file",
		Long: `Create a starter JSON configuration file.

On a terminal this walks you through the common settings (node name, data
directory, listener address and port, node labels). In a non-interactive
session a minimal file is written instead; edit it by hand afterwards.

Every value in the file can still be overridden at startup with flags or
NODELET_* environment variables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, force)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: $HOME/.nodelet/config/config.json)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
