// Package config handles configuration for patterns.
// Values come from the embedded defaults, an optional user TOML file,
// PATTERNS_* environment variables and explicit overrides, in that order.
package config
