// Package netutil provides network helpers for node address discovery.
package netutil

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrNoUsableAddress is returned when DNS resolution yields no address the
// node could be reached on.
var ErrNoUsableAddress = errors.New("unable to find default IP address for node, please specify a node IP manually")

// DiscoverNodeIP finds a usable IP address for the node by resolving its
// hostname through the system resolver, the same best-effort strategy the
// Kubernetes kubelet uses. The first address that is not loopback, not
// multicast, not unspecified, and in the same address family as preferred
// wins.
//
// No timeout or retry is applied here; callers bound the lookup through ctx.
// Discovery via the default-gateway network interface is deliberately not
// attempted because it does not behave consistently across platforms.
func DiscoverNodeIP(ctx context.Context, hostname string, preferred net.IP) (net.IP, error) {
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, hostname)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve hostname %q: %w", hostname, err)
	}
	for _, addr := range addrs {
		ip := addr.IP
		if ip.IsLoopback() || ip.IsMulticast() || ip.IsUnspecified() {
			continue
		}
		if !sameFamily(ip, preferred) {
			continue
		}
		return ip, nil
	}
	return nil, ErrNoUsableAddress
}

// sameFamily reports whether both addresses are IPv4 or both are IPv6.
func sameFamily(a, b net.IP) bool {
	return (a.To4() != nil) == (b.To4() != nil)
}
