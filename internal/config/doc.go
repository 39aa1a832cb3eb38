// Package config resolves the nodelet runtime configuration from
// command-line/environment input, an optional JSON configuration file, and
// compiled-in defaults.
//
// Each source is adapted into a [Partial] whose fields are tri-state: absent,
// valid, or present-but-invalid. [Merge] combines partials with presence
// precedence (CLI/env over file over defaults), and [Resolve] turns the
// winning field states into an immutable [Config], consulting [Fallbacks]
// for anything no source provided. Validation is deferred until after the
// merge, so a bad value in a low-precedence source never fails startup once
// a higher-precedence source supplies that field.
package config
