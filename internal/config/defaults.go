package config

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/nodelet/nodelet/internal/util/netutil"
)

// Compiled-in defaults for fields no source provides.
const (
	// DefaultPort is the port the agent server listens on.
	DefaultPort = 3000
	// DefaultMaxPods is the maximum pod count reported to the API server.
	DefaultMaxPods = 110
	// DefaultBootstrapFile is the standard kubelet TLS bootstrap location.
	DefaultBootstrapFile = "/etc/kubernetes/bootstrap-kubelet.conf"

	dataDirName  = ".nodelet"
	certFileName = "nodelet.crt"
	keyFileName  = "nodelet.key"
)

// DefaultFallbacks wires the real fallback implementations: OS hostname,
// a data directory under the user's home, cert/key paths under the data
// directory, and DNS-based node-IP discovery. The context bounds the DNS
// lookup; resolution applies no timeout of its own.
func DefaultFallbacks(ctx context.Context, preferred net.IP) Fallbacks {
	return Fallbacks{
		PreferredIPFamily: preferred,
		Hostname:          os.Hostname,
		DataDir:           defaultDataDir,
		CertPath:          defaultCertPath,
		KeyPath:           defaultKeyPath,
		NodeIP: func(hostname string, preferred net.IP) (net.IP, error) {
			return netutil.DiscoverNodeIP(ctx, hostname, preferred)
		},
	}
}

// DefaultFilePath returns the default config file location,
// $HOME/.nodelet/config/config.json.
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to get home directory: %w", err)
	}
	return filepath.Join(home, dataDirName, "config", "config.json"), nil
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to get home directory: %w", err)
	}
	return filepath.Join(home, dataDirName), nil
}

func defaultCertPath(dataDir string) string {
	return filepath.Join(dataDir, "config", certFileName)
}

func defaultKeyPath(dataDir string) string {
	return filepath.Join(dataDir, "config", keyFileName)
}
