package config

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFallbacks() Fallbacks {
	return Fallbacks{
		PreferredIPFamily: net.ParseIP("127.0.0.1"),
		Hostname:          func() (string, error) { return "fallback-hostname", nil },
		DataDir:           func() (string, error) { return "/fallback/data/dir", nil },
		CertPath:          func(string) string { return "/fallback/cert/path" },
		KeyPath:           func(string) string { return "/fallback/key/path" },
		NodeIP: func(string, net.IP) (net.IP, error) {
			return net.ParseIP("4.4.4.4"), nil
		},
	}
}

func mustParse(t *testing.T, json string) Partial {
	t.Helper()
	p, err := parseFile([]byte(json))
	require.NoError(t, err)
	return p
}

func TestResolveFileInputsAreRespected(t *testing.T) {
	p := mustParse(t, `{
		"listenerPort": 1234,
		"listenerAddress": "172.182.192.1",
		"hostname": "krusty-host",
		"dataDir": "/krusty/data/dir",
		"maxPods": 400,
		"nodeIP": "173.183.193.2",
		"nodeLabels": {
			"label1": "val1",
			"label2": "val2"
		},
		"nodeName": "krusty-node",
		"tlsCertificateFile": "/my/secure/cert.pfx",
		"tlsPrivateKeyFile": "/the/key"
	}`)

	cfg, err := Resolve(p, testFallbacks())
	require.NoError(t, err)

	assert.Equal(t, 1234, cfg.Server.Port)
	assert.Equal(t, "172.182.192.1", cfg.Server.Addr.String())
	assert.Equal(t, "/my/secure/cert.pfx", cfg.Server.TLSCertFile)
	assert.Equal(t, "/the/key", cfg.Server.TLSKeyFile)
	assert.Equal(t, "krusty-node", cfg.NodeName)
	assert.Equal(t, "krusty-host", cfg.Hostname)
	assert.Equal(t, "/krusty/data/dir", cfg.DataDir)
	assert.Equal(t, "173.183.193.2", cfg.NodeIP.String())
	assert.Equal(t, 400, cfg.MaxPods)
	assert.Len(t, cfg.NodeLabels, 2)
	assert.Equal(t, "val1", cfg.NodeLabels["label1"])
}

func TestResolveFallbacksAreRespected(t *testing.T) {
	p := mustParse(t, `{
		"listenerPort": 1234,
		"listenerAddress": "172.182.192.1",
		"nodeName": "krusty-node"
	}`)

	cfg, err := Resolve(p, testFallbacks())
	require.NoError(t, err)

	assert.Equal(t, 1234, cfg.Server.Port)
	assert.Equal(t, "172.182.192.1", cfg.Server.Addr.String())
	assert.Equal(t, "krusty-node", cfg.NodeName)
	assert.Equal(t, "fallback-hostname", cfg.Hostname)
	assert.Equal(t, "/fallback/data/dir", cfg.DataDir)
	assert.Equal(t, "/fallback/cert/path", cfg.Server.TLSCertFile)
	assert.Equal(t, "/fallback/key/path", cfg.Server.TLSKeyFile)
	assert.Equal(t, "4.4.4.4", cfg.NodeIP.String())
}

func TestResolveDefaultsAreRespected(t *testing.T) {
	cfg, err := Resolve(Partial{}, testFallbacks())
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultMaxPods, cfg.MaxPods)
	assert.Equal(t, DefaultBootstrapFile, cfg.BootstrapFile)
	assert.Equal(t, "0.0.0.0", cfg.Server.Addr.String())
	assert.Equal(t, "/fallback/cert/path", cfg.Server.TLSCertFile)
	assert.Equal(t, "/fallback/key/path", cfg.Server.TLSKeyFile)
	assert.Equal(t, "fallback-hostname", cfg.NodeName)
	assert.Equal(t, "fallback-hostname", cfg.Hostname)
	assert.Equal(t, "/fallback/data/dir", cfg.DataDir)
	assert.Equal(t, "4.4.4.4", cfg.NodeIP.String())
	assert.Empty(t, cfg.NodeLabels)
}

func TestResolvePreferredIPv6BindAddress(t *testing.T) {
	fb := testFallbacks()
	fb.PreferredIPFamily = net.ParseIP("::1")

	cfg, err := Resolve(Partial{}, fb)
	require.NoError(t, err)

	assert.Equal(t, "::", cfg.Server.Addr.String())
}

func TestResolveNodeNameDerivedFromHostname(t *testing.T) {
	p := mustParse(t, `{"hostname": "KRUSTY-Host"}`)

	cfg, err := Resolve(p, testFallbacks())
	require.NoError(t, err)

	// Node name is the sanitized (lowercased) hostname; the hostname itself
	// keeps its original casing.
	assert.Equal(t, "krusty-host", cfg.NodeName)
	assert.Equal(t, "KRUSTY-Host", cfg.Hostname)
}

func TestResolveBadPortNamesTheField(t *testing.T) {
	p := mustParse(t, `{"listenerPort": "qqqqqqqqqqq"}`)

	_, err := Resolve(p, testFallbacks())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server port")
	assert.Contains(t, err.Error(), "invalid type")
}

func TestResolveOutOfRangePortIsReported(t *testing.T) {
	p := mustParse(t, `{"listenerPort": 8675309}`)

	_, err := Resolve(p, testFallbacks())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")
}

func TestResolveInvalidOverriddenByValidIsNotAnError(t *testing.T) {
	base := mustParse(t, `{"listenerPort": 8675309}`)
	override := mustParse(t, `{"listenerPort": 1234}`)

	cfg, err := Resolve(Merge(base, override), testFallbacks())
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.Server.Port)
}

func TestResolveInvalidNotOverriddenIsStillAnError(t *testing.T) {
	base := mustParse(t, `{"listenerPort": "qqqqqqqq"}`)
	override := mustParse(t, `{"nodeName": "krustsome-node"}`)

	_, err := Resolve(Merge(base, override), testFallbacks())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server port")
}

func TestResolveFieldErrorsNameTheField(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		errText string
	}{
		{name: "node IP", json: `{"nodeIP": "none-such"}`, errText: "node IP"},
		{name: "server address", json: `{"listenerAddress": "none-such"}`, errText: "server address"},
		{name: "server port", json: `{"listenerPort": true}`, errText: "server port"},
		{name: "maximum pods", json: `{"maxPods": "many"}`, errText: "maximum pods"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, tt.json)

			_, err := Resolve(p, testFallbacks())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid "+tt.errText+" in configuration")
		})
	}
}

func TestResolveNodeIPFallbackGetsResolvedValues(t *testing.T) {
	var gotHostname string
	var gotPreferred net.IP

	fb := testFallbacks()
	fb.NodeIP = func(hostname string, preferred net.IP) (net.IP, error) {
		gotHostname = hostname
		gotPreferred = preferred
		return net.ParseIP("5.5.5.5"), nil
	}

	p := mustParse(t, `{
		"hostname": "krusty-host",
		"listenerAddress": "172.182.192.1"
	}`)

	cfg, err := Resolve(p, fb)
	require.NoError(t, err)

	// The fallback must see the final resolved hostname and bind address,
	// not raw partial states.
	assert.Equal(t, "krusty-host", gotHostname)
	assert.Equal(t, "172.182.192.1", gotPreferred.String())
	assert.Equal(t, "5.5.5.5", cfg.NodeIP.String())
}

func TestResolveCertPathsDeriveFromResolvedDataDir(t *testing.T) {
	var gotCertDir, gotKeyDir string

	fb := testFallbacks()
	fb.CertPath = func(dataDir string) string {
		gotCertDir = dataDir
		return dataDir + "/config/nodelet.crt"
	}
	fb.KeyPath = func(dataDir string) string {
		gotKeyDir = dataDir
		return dataDir + "/config/nodelet.key"
	}

	p := mustParse(t, `{"dataDir": "/krusty/data/dir"}`)

	cfg, err := Resolve(p, fb)
	require.NoError(t, err)

	assert.Equal(t, "/krusty/data/dir", gotCertDir)
	assert.Equal(t, "/krusty/data/dir", gotKeyDir)
	assert.Equal(t, "/krusty/data/dir/config/nodelet.crt", cfg.Server.TLSCertFile)
	assert.Equal(t, "/krusty/data/dir/config/nodelet.key", cfg.Server.TLSKeyFile)
}

func TestResolveFallbackFailureIsAttributed(t *testing.T) {
	fb := testFallbacks()
	fb.Hostname = func() (string, error) {
		return "", errors.New("no hostname syscall here")
	}

	_, err := Resolve(Partial{}, fb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hostname in configuration")
	assert.Contains(t, err.Error(), "no hostname syscall here")
}

func TestResolveNodeIPDiscoveryFailureIsAttributed(t *testing.T) {
	fb := testFallbacks()
	fb.NodeIP = func(string, net.IP) (net.IP, error) {
		return nil, errors.New("nothing resolvable")
	}

	_, err := Resolve(Partial{}, fb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid node IP in configuration")
}
