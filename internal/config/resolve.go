package config

import (
	"fmt"
	"net"

	"github.com/nodelet/nodelet/internal/util/naming"
)

// Fallbacks supplies values for fields no source provided. It is a record of
// closures rather than direct function calls so resolution can be exercised
// in tests without touching the network or the filesystem. Some fallbacks
// depend on fields resolved earlier in the pipeline: CertPath and KeyPath
// receive the resolved data directory, NodeIP the resolved hostname and bind
// address.
type Fallbacks struct {
	// PreferredIPFamily selects the address family for the default bind
	// address and for node-IP discovery. Any IPv4 value means IPv4, any
	// IPv6 value means IPv6.
	PreferredIPFamily net.IP

	Hostname func() (string, error)
	DataDir  func() (string, error)
	CertPath func(dataDir string) string
	KeyPath  func(dataDir string) string
	NodeIP   func(hostname string, preferred net.IP) (net.IP, error)
}

// Resolve turns the merged partial into a finished Config, or the first
// field error. Fields are resolved in a fixed order because later fallbacks
// consume earlier results: the node-IP fallback needs the resolved hostname
// and bind address, and the cert/key fallbacks need the resolved data
// directory. Do not reorder.
//
// A present-but-invalid field fails resolution with an error naming the
// logical field; an absent field never fails here, it falls through to its
// fallback (whose own failure is attributed to the same field).
func Resolve(p Partial, fb Fallbacks) (*Config, error) {
	hostname, err := resolveField(p.Hostname, "hostname", fb.Hostname)
	if err != nil {
		return nil, err
	}

	dataDir, err := resolveField(p.DataDir, "data directory", fb.DataDir)
	if err != nil {
		return nil, err
	}

	serverAddr, err := resolveField(p.ServerAddr, "server address", func() (net.IP, error) {
		return unspecifiedAddr(fb.PreferredIPFamily), nil
	})
	if err != nil {
		return nil, err
	}

	tlsCertFile, err := resolveField(p.TLSCertFile, "TLS certificate file", func() (string, error) {
		return fb.CertPath(dataDir), nil
	})
	if err != nil {
		return nil, err
	}

	tlsKeyFile, err := resolveField(p.TLSKeyFile, "TLS private key file", func() (string, error) {
		return fb.KeyPath(dataDir), nil
	})
	if err != nil {
		return nil, err
	}

	serverPort, err := resolveField(p.ServerPort, "server port", func() (int, error) {
		return DefaultPort, nil
	})
	if err != nil {
		return nil, err
	}

	nodeIP, err := resolveField(p.NodeIP, "node IP", func() (net.IP, error) {
		return fb.NodeIP(hostname, serverAddr)
	})
	if err != nil {
		return nil, err
	}

	nodeName, err := resolveField(p.NodeName, "node name", func() (string, error) {
		return naming.SanitizeHostname(hostname), nil
	})
	if err != nil {
		return nil, err
	}

	maxPods, err := resolveField(p.MaxPods, "maximum pods", func() (int, error) {
		return DefaultMaxPods, nil
	})
	if err != nil {
		return nil, err
	}

	bootstrapFile, err := resolveField(p.BootstrapFile, "bootstrap file", func() (string, error) {
		return DefaultBootstrapFile, nil
	})
	if err != nil {
		return nil, err
	}

	nodeLabels, err := resolveField(p.NodeLabels, "node labels", func() (map[string]string, error) {
		return map[string]string{}, nil
	})
	if err != nil {
		return nil, err
	}

	return &Config{
		NodeIP:        nodeIP,
		Hostname:      hostname,
		NodeName:      nodeName,
		DataDir:       dataDir,
		NodeLabels:    nodeLabels,
		MaxPods:       maxPods,
		BootstrapFile: bootstrapFile,
		Server: ServerConfig{
			Addr:        serverAddr,
			Port:        serverPort,
			TLSCertFile: tlsCertFile,
			TLSKeyFile:  tlsKeyFile,
		},
	}, nil
}

// resolveField maps one field state to its final value: valid passes
// through, invalid fails with the field's logical name, absent consults the
// fallback. Fallback failures carry the same field attribution.
func resolveField[T any](f FieldState[T], name string, fallback func() (T, error)) (T, error) {
	var zero T
	switch f.kind {
	case fieldValid:
		return f.val, nil
	case fieldInvalid:
		return zero, invalidFieldError(name, f.err)
	default:
		v, err := fallback()
		if err != nil {
			return zero, invalidFieldError(name, err)
		}
		return v, nil
	}
}

// invalidFieldError attributes a failure to a logical field name, never the
// raw source key.
func invalidFieldError(name string, cause error) error {
	return fmt.Errorf("invalid %s in configuration: %w", name, cause)
}

// unspecifiedAddr returns the wildcard bind address for the preferred
// family: 0.0.0.0 for IPv4, :: for IPv6.
func unspecifiedAddr(preferred net.IP) net.IP {
	if preferred != nil && preferred.To4() == nil {
		return net.IPv6unspecified
	}
	return net.IPv4zero
}
