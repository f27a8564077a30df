package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidInputConfigs indicates invalid input settings
	// (for example, a missing input file path).
	ErrInvalidInputConfigs = errors.New("invalid input configuration")
	// ErrInvalidOutputConfigs indicates invalid output settings
	// (for example, an unsupported output format).
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
)
