package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/nodelet/nodelet/internal/config"
)

// Factory function variables for run - can be replaced in tests.
var (
	// newLogger builds the process logger. Plain key=value lines on stderr.
	newLogger = func() logr.Logger {
		return funcr.New(func(prefix, args string) {
			if prefix != "" {
				fmt.Fprintf(os.Stderr, "%s %s\n", prefix, args)
			} else {
				fmt.Fprintln(os.Stderr, args)
			}
		}, funcr.Options{})
	}

	// startAgent hands the resolved configuration to the agent runtime.
	startAgent = runAgent
)

// Run resolves the node configuration and starts the agent.
func Run(ctx context.Context, configPath string, opts config.CLIOptions) error {
	cfg, err := resolveConfig(ctx, configPath, opts)
	if err != nil {
		return err
	}

	log := newLogger().WithName("nodelet")
	log.Info("configuration resolved",
		"nodeName", cfg.NodeName,
		"hostname", cfg.Hostname,
		"nodeIP", cfg.NodeIP.String(),
		"dataDir", cfg.DataDir,
		"listenerAddress", cfg.Server.Addr.String(),
		"listenerPort", cfg.Server.Port,
		"maxPods", cfg.MaxPods,
		"bootstrapFile", cfg.BootstrapFile,
	)

	return startAgent(ctx, log, cfg)
}

// runAgent is the handoff point to the agent runtime. Node registration and
// serving live downstream of the configuration layer.
func runAgent(_ context.Context, log logr.Logger, cfg *config.Config) error {
	log.Info("starting node agent", "addr", fmt.Sprintf("%s:%d", cfg.Server.Addr, cfg.Server.Port))
	return nil
}
