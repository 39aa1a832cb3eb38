package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nodelet/nodelet/internal/config"
)

// Environment variable fallbacks for the configuration flags.
const (
	envAddress       = "NODELET_ADDRESS"
	envPort          = "NODELET_PORT"
	envMaxPods       = "NODELET_MAX_PODS"
	envTLSCertFile   = "NODELET_TLS_CERT_FILE"
	envTLSKeyFile    = "NODELET_TLS_PRIVATE_KEY_FILE"
	envNodeIP        = "NODELET_NODE_IP"
	envNodeLabels    = "NODELET_NODE_LABELS"
	envHostname      = "NODELET_HOSTNAME"
	envNodeName      = "NODELET_NODE_NAME"
	envDataDir       = "NODELET_DATA_DIR"
	envBootstrapFile = "NODELET_BOOTSTRAP_FILE"
)

// configFlags binds the shared configuration flags carried by every command
// that resolves a configuration (run, config show, doctor).
type configFlags struct {
	configPath    string
	addr          string
	port          string
	maxPods       string
	tlsCertFile   string
	tlsKeyFile    string
	nodeIP        string
	nodeLabels    []string
	hostname      string
	nodeName      string
	dataDir       string
	bootstrapFile string
}

func (f *configFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "",
		"Path to the JSON configuration file (default: $HOME/.nodelet/config/config.json)")
	flags.StringVarP(&f.addr, "addr", "a", "",
		"The address the agent server should listen on")
	flags.StringVarP(&f.port, "port", "p", "",
		"The port the agent server should listen on. Defaults to 3000")
	flags.StringVar(&f.maxPods, "max-pods", "",
		"The maximum pods for this node (reported to the API server). Defaults to 110")
	flags.StringVar(&f.tlsCertFile, "tls-cert-file", "",
		"The path to the server TLS certificate. Defaults to $NODELET_DATA_DIR/config/nodelet.crt")
	flags.StringVar(&f.tlsKeyFile, "tls-private-key-file", "",
		"The path to the server TLS key. Defaults to $NODELET_DATA_DIR/config/nodelet.key")
	flags.StringVarP(&f.nodeIP, "node-ip", "n", "",
		"The IP address of the node registered with the cluster. Defaults to a DNS lookup of the hostname as a best effort")
	flags.StringSliceVar(&f.nodeLabels, "node-labels", nil,
		"Labels to add when registering the node in the cluster, as comma-separated key=value pairs")
	flags.StringVar(&f.hostname, "hostname", "",
		"The hostname for this node. Defaults to the hostname of this machine")
	flags.StringVar(&f.nodeName, "node-name", "",
		"The name for this node in the cluster. Defaults to the lowercased hostname of this machine")
	flags.StringVar(&f.dataDir, "data-dir", "",
		"The data path for nodelet storage. Defaults to $HOME/.nodelet")
	flags.StringVar(&f.bootstrapFile, "bootstrap-file", "",
		"The path to the TLS bootstrap config. Defaults to /etc/kubernetes/bootstrap-kubelet.conf")
}

// options adapts the bound flags into CLI options, falling back to the
// NODELET_* environment variables for flags that were not set. A flag set to
// an empty string still counts as set and overrides the environment.
func (f *configFlags) options(cmd *cobra.Command) config.CLIOptions {
	return config.CLIOptions{
		Addr:          flagOrEnv(cmd, "addr", f.addr, envAddress),
		Port:          flagOrEnv(cmd, "port", f.port, envPort),
		MaxPods:       flagOrEnv(cmd, "max-pods", f.maxPods, envMaxPods),
		TLSCertFile:   flagOrEnv(cmd, "tls-cert-file", f.tlsCertFile, envTLSCertFile),
		TLSKeyFile:    flagOrEnv(cmd, "tls-private-key-file", f.tlsKeyFile, envTLSKeyFile),
		NodeIP:        flagOrEnv(cmd, "node-ip", f.nodeIP, envNodeIP),
		NodeLabels:    labelsOrEnv(cmd, "node-labels", f.nodeLabels, envNodeLabels),
		Hostname:      flagOrEnv(cmd, "hostname", f.hostname, envHostname),
		NodeName:      flagOrEnv(cmd, "node-name", f.nodeName, envNodeName),
		DataDir:       flagOrEnv(cmd, "data-dir", f.dataDir, envDataDir),
		BootstrapFile: flagOrEnv(cmd, "bootstrap-file", f.bootstrapFile, envBootstrapFile),
	}
}

func flagOrEnv(cmd *cobra.Command, name, value, env string) *string {
	if cmd.Flags().Changed(name) {
		return &value
	}
	if v, ok := os.LookupEnv(env); ok {
		return &v
	}
	return nil
}

func labelsOrEnv(cmd *cobra.Command, name string, value []string, env string) []string {
	if cmd.Flags().Changed(name) {
		return value
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return splitCommaList(v)
	}
	return nil
}

func splitCommaList(v string) []string {
	var out []string
	for _, token := range strings.Split(v, ",") {
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}
