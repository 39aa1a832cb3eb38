// Package naming derives node identity strings from host information.
package naming

import "strings"

// SanitizeHostname lowercases a raw hostname so it can serve as a node name.
// Node names must be valid DNS labels, and hostnames (particularly local
// ones) can carry uppercase letters, which the DNS spec used in Kubernetes
// naming disallows.
//
// Lowercasing is the only transformation applied: characters that are
// invalid in a DNS label pass through unchanged, and no length truncation
// happens.
func SanitizeHostname(hostname string) string {
	return strings.ToLower(hostname)
}
