// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file, environment variables and bound
// command-line flags. It provides type-safe access to the settings of the
// logger, scoring engine, crop catalog, batch runner and output renderer.
package config
