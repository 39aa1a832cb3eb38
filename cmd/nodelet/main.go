// Package main is the entry point for the nodelet CLI.
//
// nodelet is a lightweight Kubernetes-style node agent. Its running
// configuration is resolved once at startup from command-line flags and
// NODELET_* environment variables, an optional JSON configuration file, and
// compiled-in defaults, with that precedence.
//
// Commands: run, config, init, doctor, version, completion.
//
// For detailed usage information, run:
//
//	nodelet --help
package main

import (
	"fmt"
	"os"

	"github.com/nodelet/nodelet/cmd/nodelet/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
