// Package config provides configuration loading, merging, and validation
// facilities for the easyadmin loader binary.
//
// Configuration is assembled from multiple sources in the following priority
// order:
//  1. Environment variables
//  2. Command-line flags
//
// The main entry point is [GetStructuredConfig]. Note that this package
// configures the loader process itself (paths, formats, log level); the
// admin backend document being normalized is handled by the parser and
// normalizer packages.
package config
