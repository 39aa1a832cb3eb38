package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"net"
	"os"
)

// Keys recognized in the JSON configuration file.
const (
	keyNodeIP          = "nodeIP"
	keyHostname        = "hostname"
	keyNodeName        = "nodeName"
	keyDataDir         = "dataDir"
	keyNodeLabels      = "nodeLabels"
	keyMaxPods         = "maxPods"
	keyListenerAddress = "listenerAddress"
	keyListenerPort    = "listenerPort"
	keyTLSCertFile     = "tlsCertificateFile"
	keyTLSKeyFile      = "tlsPrivateKeyFile"
)

// LoadFile reads the JSON configuration file at path into a Partial.
// A missing file is not an error and yields an all-absent partial; a file
// that exists but cannot be read or parsed is fatal, with the parser's
// message passed through.
//
// Values that may legitimately arrive malformed (addresses, ports, pod
// counts) are captured as invalid field states rather than failing the load,
// so a higher-precedence source can still override them. Type errors on the
// remaining fields fail the load outright.
func LoadFile(path string) (Partial, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Partial{}, nil
		}
		return Partial{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return parseFile(data)
}

func parseFile(data []byte) (Partial, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Partial{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return fromRaw(raw)
}

func fromRaw(raw map[string]any) (Partial, error) {
	p := Partial{
		NodeIP:     ipField(raw, keyNodeIP),
		MaxPods:    portRangeField(raw, keyMaxPods),
		ServerAddr: ipField(raw, keyListenerAddress),
		ServerPort: portRangeField(raw, keyListenerPort),
	}

	var err error
	if p.Hostname, err = stringField(raw, keyHostname); err != nil {
		return Partial{}, err
	}
	if p.NodeName, err = stringField(raw, keyNodeName); err != nil {
		return Partial{}, err
	}
	if p.DataDir, err = stringField(raw, keyDataDir); err != nil {
		return Partial{}, err
	}
	if p.TLSCertFile, err = stringField(raw, keyTLSCertFile); err != nil {
		return Partial{}, err
	}
	if p.TLSKeyFile, err = stringField(raw, keyTLSKeyFile); err != nil {
		return Partial{}, err
	}
	if p.NodeLabels, err = labelField(raw, keyNodeLabels); err != nil {
		return Partial{}, err
	}
	return p, nil
}

func stringField(raw map[string]any, key string) (FieldState[string], error) {
	v, ok := raw[key]
	if !ok {
		return Absent[string](), nil
	}
	s, ok := v.(string)
	if !ok {
		return Absent[string](), fmt.Errorf("%s: expected string, got %T", key, v)
	}
	return Valid(s), nil
}

func labelField(raw map[string]any, key string) (FieldState[map[string]string], error) {
	v, ok := raw[key]
	if !ok {
		return Absent[map[string]string](), nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return Absent[map[string]string](), fmt.Errorf("%s: expected object, got %T", key, v)
	}
	out := make(map[string]string, len(m))
	for k, lv := range m {
		s, ok := lv.(string)
		if !ok {
			return Absent[map[string]string](), fmt.Errorf("%s: value for %q must be a string, got %T", key, k, lv)
		}
		out[k] = s
	}
	return Valid(out), nil
}

func ipField(raw map[string]any, key string) FieldState[net.IP] {
	v, ok := raw[key]
	if !ok {
		return Absent[net.IP]()
	}
	s, ok := v.(string)
	if !ok {
		return Invalid[net.IP](fmt.Errorf("invalid type: expected string, got %T", v))
	}
	return parseIP(s)
}

// portRangeField decodes a JSON number constrained to the unsigned 16-bit
// range (listener ports and pod counts share it).
func portRangeField(raw map[string]any, key string) FieldState[int] {
	v, ok := raw[key]
	if !ok {
		return Absent[int]()
	}
	n, ok := v.(float64)
	if !ok {
		return Invalid[int](fmt.Errorf("invalid type: expected number, got %T", v))
	}
	if n != math.Trunc(n) {
		return Invalid[int](fmt.Errorf("invalid value: %v is not an integer", n))
	}
	if n < 0 || n > math.MaxUint16 {
		return Invalid[int](fmt.Errorf("invalid value: %.0f out of range 0-65535", n))
	}
	return Valid(int(n))
}

func parseIP(s string) FieldState[net.IP] {
	ip := net.ParseIP(s)
	if ip == nil {
		return Invalid[net.IP](fmt.Errorf("invalid IP address %q", s))
	}
	return Valid(ip)
}
