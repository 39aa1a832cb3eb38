package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/nodelet/nodelet/internal/config"
)

// renderedConfig mirrors the configuration file schema so that `config show`
// output can be fed straight back into a configuration file.
type renderedConfig struct {
	NodeIP             string            `json:"nodeIP" yaml:"nodeIP"`
	Hostname           string            `json:"hostname" yaml:"hostname"`
	NodeName           string            `json:"nodeName" yaml:"nodeName"`
	DataDir            string            `json:"dataDir" yaml:"dataDir"`
	NodeLabels         map[string]string `json:"nodeLabels" yaml:"nodeLabels"`
	MaxPods            int               `json:"maxPods" yaml:"maxPods"`
	ListenerAddress    string            `json:"listenerAddress" yaml:"listenerAddress"`
	ListenerPort       int               `json:"listenerPort" yaml:"listenerPort"`
	TLSCertificateFile string            `json:"tlsCertificateFile" yaml:"tlsCertificateFile"`
	TLSPrivateKeyFile  string            `json:"tlsPrivateKeyFile" yaml:"tlsPrivateKeyFile"`
	BootstrapFile      string            `json:"bootstrapFile" yaml:"bootstrapFile"`
}

func renderConfig(cfg *config.Config) renderedConfig {
	return renderedConfig{
		NodeIP:             cfg.NodeIP.String(),
		Hostname:           cfg.Hostname,
		NodeName:           cfg.NodeName,
		DataDir:            cfg.DataDir,
		NodeLabels:         cfg.NodeLabels,
		MaxPods:            cfg.MaxPods,
		ListenerAddress:    cfg.Server.Addr.String(),
		ListenerPort:       cfg.Server.Port,
		TLSCertificateFile: cfg.Server.TLSCertFile,
		TLSPrivateKeyFile:  cfg.Server.TLSKeyFile,
		BootstrapFile:      cfg.BootstrapFile,
	}
}

// Show resolves the configuration exactly as `run` would and prints it.
//
// With --output json or yaml the machine-readable form is printed. With no
// format a styled summary is used on a terminal and JSON otherwise.
func Show(ctx context.Context, configPath string, opts config.CLIOptions, output string) error {
	cfg, err := resolveConfig(ctx, configPath, opts)
	if err != nil {
		return err
	}

	rendered := renderConfig(cfg)

	switch output {
	case "json":
		return printConfigJSON(rendered)
	case "yaml":
		data, err := yaml.Marshal(rendered)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	case "":
		if isInteractiveTTY() {
			fmt.Println(renderConfigSummary(rendered))
			return nil
		}
		return printConfigJSON(rendered)
	default:
		return fmt.Errorf("unsupported output format %q (want json or yaml)", output)
	}
}

func printConfigJSON(rendered renderedConfig) error {
	data, err := json.MarshalIndent(rendered, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
