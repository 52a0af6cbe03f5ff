// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional YAML file, environment variables).
// It provides type-safe access to the settings needed by the API server and the
// task view while keeping configuration details separate from business logic.
package config
