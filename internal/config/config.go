package config

import "net"

// Config is the fully resolved configuration the node agent runs with.
// It is built once at process start and treated as immutable afterwards;
// downstream subsystems share it read-only.
type Config struct {
	// NodeIP is the IP address the node is exposed on.
	NodeIP net.IP
	// Hostname of the node.
	Hostname string
	// NodeName is the name the node registers with in the cluster.
	NodeName string
	// DataDir is where the agent stores its data.
	DataDir string
	// NodeLabels are added when registering the node in the cluster.
	NodeLabels map[string]string
	// MaxPods is the maximum pod count reported to the API server.
	MaxPods int
	// BootstrapFile is the location of the TLS bootstrapping file.
	BootstrapFile string
	// Server holds the agent's listener configuration.
	Server ServerConfig
}

// ServerConfig is the agent server's listener configuration.
type ServerConfig struct {
	// Addr is the IP address the server binds to.
	Addr net.IP
	// Port the server listens on.
	Port int
	// TLSCertFile is the path to the server TLS certificate.
	TLSCertFile string
	// TLSKeyFile is the path to the server TLS private key.
	TLSKeyFile string
}
