package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/nodelet/nodelet/internal/config"
	"github.com/nodelet/nodelet/internal/util/labels"
)

// initAnswers holds the wizard answers. Empty fields are omitted from the
// generated file so they keep resolving through the normal fallbacks.
type initAnswers struct {
	NodeName   string
	DataDir    string
	Addr       string
	Port       string
	MaxPods    string
	NodeLabels string
}

// Factory function variables for init - can be replaced in tests.
var (
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	runInitWizard = runWizard

	writeConfigFile = func(path string, data []byte) error {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o600)
	}
)

// Init writes a starter configuration file.
//
// On a terminal the settings are collected interactively; otherwise a
// minimal file is written. An existing file is only overwritten with force.
func Init(ctx context.Context, outputPath string, force bool) error {
	path := outputPath
	if path == "" {
		var err error
		path, err = defaultFilePath()
		if err != nil {
			return err
		}
	}

	if fileExists(path) && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	answers := &initAnswers{}
	if isInteractiveTTY() {
		var err error
		answers, err = runInitWizard(ctx)
		if err != nil {
			return fmt.Errorf("wizard canceled: %w", err)
		}
	}

	data, err := marshalInitConfig(answers)
	if err != nil {
		return err
	}

	if err := writeConfigFile(path, data); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", path)
	fmt.Println()
	fmt.Println("Every value can still be overridden at startup with flags or")
	fmt.Println("NODELET_* environment variables. Run 'nodelet config show' to")
	fmt.Println("see the configuration the agent would resolve.")
	fmt.Println()

	return nil
}

// runWizard collects the common settings interactively.
func runWizard(ctx context.Context) (*initAnswers, error) {
	answers := &initAnswers{}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Node Name").
				Description("The name for this node in the cluster. Leave empty to derive it from the hostname.").
				Placeholder("edge-node-1").
				Value(&answers.NodeName),
			huh.NewInput().
				Title("Data Directory").
				Description("Storage path for node state. Leave empty for $HOME/.nodelet.").
				Placeholder("/var/lib/nodelet").
				Value(&answers.DataDir),
		).Title("Node Identity"),
		huh.NewGroup(
			huh.NewInput().
				Title("Listener Address").
				Description("The address the agent server listens on. Leave empty for all interfaces.").
				Placeholder("0.0.0.0").
				Value(&answers.Addr).
				Validate(validateOptionalIP),
			huh.NewInput().
				Title("Listener Port").
				Description(fmt.Sprintf("Leave empty for %d.", config.DefaultPort)).
				Placeholder(strconv.Itoa(config.DefaultPort)).
				Value(&answers.Port).
				Validate(validateOptionalPort),
		).Title("Server"),
		huh.NewGroup(
			huh.NewInput().
				Title("Max Pods").
				Description(fmt.Sprintf("Maximum pods reported to the API server. Leave empty for %d.", config.DefaultMaxPods)).
				Placeholder(strconv.Itoa(config.DefaultMaxPods)).
				Value(&answers.MaxPods).
				Validate(validateOptionalPort),
			huh.NewInput().
				Title("Node Labels").
				Description("Comma-separated key=value pairs added when registering the node.").
				Placeholder("pool=edge,zone=eu").
				Value(&answers.NodeLabels),
		).Title("Scheduling"),
	).RunWithContext(ctx)
	if err != nil {
		return nil, err
	}

	return answers, nil
}

func validateOptionalIP(s string) error {
	if s == "" {
		return nil
	}
	if net.ParseIP(s) == nil {
		return fmt.Errorf("invalid IP address %q", s)
	}
	return nil
}

func validateOptionalPort(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("%d out of range 0-65535", n)
	}
	return nil
}

// marshalInitConfig renders the answers as a configuration file, keeping
// only the fields that were actually answered.
func marshalInitConfig(answers *initAnswers) ([]byte, error) {
	out := map[string]any{}

	if answers.NodeName != "" {
		out["nodeName"] = answers.NodeName
	}
	if answers.DataDir != "" {
		out["dataDir"] = answers.DataDir
	}
	if answers.Addr != "" {
		out["listenerAddress"] = answers.Addr
	}
	if answers.Port != "" {
		n, err := strconv.Atoi(answers.Port)
		if err != nil {
			return nil, fmt.Errorf("invalid listener port %q", answers.Port)
		}
		out["listenerPort"] = n
	}
	if answers.MaxPods != "" {
		n, err := strconv.Atoi(answers.MaxPods)
		if err != nil {
			return nil, fmt.Errorf("invalid max pods %q", answers.MaxPods)
		}
		out["maxPods"] = n
	}
	if answers.NodeLabels != "" {
		parsed := labels.Parse(splitLabelTokens(answers.NodeLabels))
		if len(parsed) > 0 {
			out["nodeLabels"] = parsed
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return append(data, '\n'), nil
}

func splitLabelTokens(v string) []string {
	var out []string
	for _, token := range strings.Split(v, ",") {
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}
