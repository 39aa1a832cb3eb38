package config

import "net"

// Partial is the configuration as reported by a single source. Every field
// is tri-state so that merging can distinguish "not mentioned" from
// "mentioned but broken". Partials are transient: they are built per source
// and consumed immediately by Merge and Resolve.
type Partial struct {
	NodeIP        FieldState[net.IP]
	Hostname      FieldState[string]
	NodeName      FieldState[string]
	DataDir       FieldState[string]
	NodeLabels    FieldState[map[string]string]
	MaxPods       FieldState[int]
	BootstrapFile FieldState[string]
	ServerAddr    FieldState[net.IP]
	ServerPort    FieldState[int]
	TLSCertFile   FieldState[string]
	TLSKeyFile    FieldState[string]
}

// Merge combines two partials field by field. A field present in override
// (valid or invalid) wins; an absent override field keeps whatever base had.
// Merge never validates: a stale parse error in base is silently discarded
// the moment override supplies the field, and survives otherwise.
func Merge(base, override Partial) Partial {
	return Partial{
		NodeIP:        overrideField(base.NodeIP, override.NodeIP),
		Hostname:      overrideField(base.Hostname, override.Hostname),
		NodeName:      overrideField(base.NodeName, override.NodeName),
		DataDir:       overrideField(base.DataDir, override.DataDir),
		NodeLabels:    overrideField(base.NodeLabels, override.NodeLabels),
		MaxPods:       overrideField(base.MaxPods, override.MaxPods),
		BootstrapFile: overrideField(base.BootstrapFile, override.BootstrapFile),
		ServerAddr:    overrideField(base.ServerAddr, override.ServerAddr),
		ServerPort:    overrideField(base.ServerPort, override.ServerPort),
		TLSCertFile:   overrideField(base.TLSCertFile, override.TLSCertFile),
		TLSKeyFile:    overrideField(base.TLSKeyFile, override.TLSKeyFile),
	}
}
