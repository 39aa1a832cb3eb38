// Package handlers implements the command execution logic for the nodelet CLI.
//
// Handlers are framework-agnostic: they receive parsed flag values from the
// commands package and delegate to internal packages. External collaborators
// are held in package-level factory variables so tests can replace them.
package handlers

import (
	"context"
	"net"

	"github.com/nodelet/nodelet/internal/config"
)

// Factory function variables shared by the handlers - can be replaced in tests.
var (
	loadFilePartial  = config.LoadFile
	defaultFilePath  = config.DefaultFilePath
	defaultFallbacks = config.DefaultFallbacks
)

// preferredIPFamily steers the default listener address and node IP
// discovery. IPv4 unless changed at build time.
var preferredIPFamily = net.IPv4zero

// resolveConfig runs the full configuration pipeline: load the file partial
// (the default path if none was given), merge the CLI partial on top, and
// resolve the result against the platform fallbacks.
func resolveConfig(ctx context.Context, configPath string, opts config.CLIOptions) (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = defaultFilePath()
		if err != nil {
			return nil, err
		}
	}

	filePartial, err := loadFilePartial(path)
	if err != nil {
		return nil, err
	}

	merged := config.Merge(filePartial, config.FromCLI(opts))

	return config.Resolve(merged, defaultFallbacks(ctx, preferredIPFamily))
}
