package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/itskawsar/EasyAdminBundle/internal/config"
	"github.com/itskawsar/EasyAdminBundle/internal/container"
	"github.com/itskawsar/EasyAdminBundle/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("easyadmin")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if level, err := zerolog.ParseLevel(cfg.App.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	document, err := os.ReadFile(cfg.Input.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading input document")
	}

	extension := container.NewExtension(log)
	schema, err := extension.Load(document, container.New())
	if err != nil {
		log.Fatal().Err(err).Msg("error loading backend configuration")
	}

	output, err := encodeSchema(schema, cfg.Output.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding normalized schema")
	}

	if err := writeOutput(output, cfg.Output.Path); err != nil {
		log.Fatal().Err(err).Msg("error writing normalized schema")
	}
}

func encodeSchema(schema any, format string) ([]byte, error) {
	if format == config.FormatJSON {
		return json.MarshalIndent(schema, "", "  ")
	}

	return yaml.Marshal(schema)
}

func writeOutput(output []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(output)
		return err
	}

	return os.WriteFile(path, output, 0o644)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	// stdout is reserved for the emitted schema
	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
