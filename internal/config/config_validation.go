// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kawsar Ahmed

package config

// applyDefaults fills the fields no configuration source provided.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatYAML
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before the loader starts.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Input.Path == "" {
		return ErrInvalidInputConfigs
	}

	if cfg.Output.Format != FormatYAML && cfg.Output.Format != FormatJSON {
		return ErrInvalidOutputConfigs
	}

	return nil
}
