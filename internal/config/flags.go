package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-i/-input path of the YAML document to normalize
//	-f/-format output format, "yaml" or "json"
//	-o/-output output file path (empty writes to stdout)
//	-log-level minimum log level ("debug", "info", ...)
func ParseFlags() *StructuredConfig {
	var inputPath string
	var outputFormat string
	var outputPath string
	var logLevel string

	flag.StringVar(&inputPath, "i", "", "Input document path")
	flag.StringVar(&inputPath, "input", "", "Input document path (alias)")
	flag.StringVar(&outputFormat, "f", "", "Output format: yaml or json")
	flag.StringVar(&outputFormat, "format", "", "Output format: yaml or json (alias)")
	flag.StringVar(&outputPath, "o", "", "Output file path, stdout when empty")
	flag.StringVar(&outputPath, "output", "", "Output file path, stdout when empty (alias)")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Input: Input{
			Path: inputPath,
		},
		Output: Output{
			Format: outputFormat,
			Path:   outputPath,
		},
	}
}
