// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kawsar Ahmed

package config

// Output format names accepted by the -format flag and OUTPUT_FORMAT
// environment variable.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// StructuredConfig is the top-level configuration container for the
// easyadmin loader binary. It is populated by merging values from
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level and the
	// reported version.
	App App `envPrefix:"APP_"`

	// Input holds settings describing the raw configuration document to load.
	Input Input `envPrefix:"INPUT_"`

	// Output holds settings describing where and how the normalized schema
	// is emitted.
	Output Output `envPrefix:"OUTPUT_"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimum zerolog level emitted ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Input describes the raw configuration document.
type Input struct {
	// Path is the path of the YAML document holding the entity
	// configuration to normalize.
	// Env: INPUT_FILE
	Path string `env:"FILE"`
}

// Output describes where the normalized schema goes.
type Output struct {
	// Format selects the emitted encoding, one of "yaml" or "json".
	// Env: OUTPUT_FORMAT
	Format string `env:"FORMAT"`

	// Path is the file the schema is written to. Empty means stdout.
	// Env: OUTPUT_FILE
	Path string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		build()
}
