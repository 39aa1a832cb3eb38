// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and environment variable fallbacks. Command
// execution is delegated to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the nodelet CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodelet",
		Short: "A lightweight Kubernetes node agent",
	}

	cmd.AddCommand(Run())
	cmd.AddCommand(Config())
	cmd.AddCommand(Init())
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
