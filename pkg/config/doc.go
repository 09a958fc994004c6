// Package config handles configuration management for svgmacro.
// It supports loading configuration from multiple sources including
// the embedded defaults, user and project TOML files, and environment
// variables.
package config
