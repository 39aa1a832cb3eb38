// Package labels parses node label inputs into label maps.
//
// Operators pass labels as "key=value" tokens on the command line; the
// configuration file carries them as a JSON object. This package handles the
// token form and the merging rules shared by both.
package labels

import "strings"

// ParseOne splits a single "key=value" token on the first '='. A token
// without '=' yields the whole token as the key with an empty value. Tokens
// with an empty key are rejected; ok reports whether the token was usable.
func ParseOne(token string) (key, value string, ok bool) {
	key, value, _ = strings.Cut(token, "=")
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

// Parse builds a label map from raw tokens. Malformed tokens are dropped
// silently rather than treated as errors; duplicate keys follow standard map
// semantics, last one wins.
func Parse(tokens []string) map[string]string {
	out := make(map[string]string, len(tokens))
	for _, token := range tokens {
		if k, v, ok := ParseOne(token); ok {
			out[k] = v
		}
	}
	return out
}

// Merge copies extra into base and returns base, overwriting on key
// collisions.
func Merge(base, extra map[string]string) map[string]string {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
