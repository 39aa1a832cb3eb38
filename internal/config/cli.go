package config

import (
	"fmt"
	"math"
	"net"
	"strconv"

	"github.com/nodelet/nodelet/internal/util/labels"
)

// CLIOptions carries the raw values gathered from command-line flags and
// their NODELET_* environment fallbacks. A nil pointer means the option was
// supplied nowhere. Values stay strings here; parsing happens in FromCLI so
// that a bad value becomes a deferred field error instead of aborting flag
// parsing.
type CLIOptions struct {
	Addr          *string
	Port          *string
	MaxPods       *string
	TLSCertFile   *string
	TLSKeyFile    *string
	NodeIP        *string
	NodeLabels    []string
	Hostname      *string
	NodeName      *string
	DataDir       *string
	BootstrapFile *string
}

// FromCLI adapts raw CLI/environment input into a Partial. Label tokens are
// split on the first '='; malformed tokens (empty keys) are dropped, and if
// nothing survives the field is treated as absent.
func FromCLI(opts CLIOptions) Partial {
	p := Partial{
		NodeIP:        ipOption(opts.NodeIP),
		Hostname:      stringOption(opts.Hostname),
		NodeName:      stringOption(opts.NodeName),
		DataDir:       stringOption(opts.DataDir),
		MaxPods:       portRangeOption(opts.MaxPods),
		BootstrapFile: stringOption(opts.BootstrapFile),
		ServerAddr:    ipOption(opts.Addr),
		ServerPort:    portRangeOption(opts.Port),
		TLSCertFile:   stringOption(opts.TLSCertFile),
		TLSKeyFile:    stringOption(opts.TLSKeyFile),
	}

	if parsed := labels.Parse(opts.NodeLabels); len(parsed) > 0 {
		p.NodeLabels = Valid(parsed)
	}
	return p
}

func stringOption(s *string) FieldState[string] {
	if s == nil {
		return Absent[string]()
	}
	return Valid(*s)
}

func ipOption(s *string) FieldState[net.IP] {
	if s == nil {
		return Absent[net.IP]()
	}
	return parseIP(*s)
}

func portRangeOption(s *string) FieldState[int] {
	if s == nil {
		return Absent[int]()
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return Invalid[int](fmt.Errorf("invalid number %q", *s))
	}
	if n < 0 || n > math.MaxUint16 {
		return Invalid[int](fmt.Errorf("invalid value: %d out of range 0-65535", n))
	}
	return Valid(n)
}
