// Package config handles configuration management for ensure.
// It layers embedded defaults, the user's config.toml, ENSURE_* environment
// variables and command-line overrides, in that order.
package config
