// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kawsar Ahmed

package container

import (
	"fmt"

	"github.com/itskawsar/EasyAdminBundle/internal/logger"
	"github.com/itskawsar/EasyAdminBundle/internal/normalizer"
	"github.com/itskawsar/EasyAdminBundle/internal/parser"
	"github.com/itskawsar/EasyAdminBundle/internal/utils"
	"github.com/itskawsar/EasyAdminBundle/models"
)

// Extension is the configuration-load entry point: it parses a raw
// configuration document, normalizes it, and registers the result in a
// container under [BackendConfigParameter].
type Extension struct {
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewExtension constructs an Extension reporting to the given logger.
func NewExtension(log *logger.Logger) *Extension {
	return &Extension{
		uuid:   utils.NewUUIDGenerator(),
		logger: log,
	}
}

// Load parses data as a backend configuration document, normalizes it and
// stores the resulting schema in c. Any parse or normalization error aborts
// the load and leaves the container untouched.
func (e *Extension) Load(data []byte, c *Container) (*models.Schema, error) {
	// each load gets its own trace id
	log := &logger.Logger{Logger: e.logger.With().Str("load_id", e.uuid.Generate()).Logger()}

	entries, err := parser.Parse(data)
	if err != nil {
		log.Error().Err(err).Msg("error parsing backend configuration")
		return nil, fmt.Errorf("error loading backend configuration: %w", err)
	}
	log.Debug().Int("entries", len(entries)).Msg("backend configuration parsed")

	schema, err := normalizer.New(log).Normalize(entries)
	if err != nil {
		log.Error().Err(err).Msg("error normalizing backend configuration")
		return nil, fmt.Errorf("error loading backend configuration: %w", err)
	}

	c.SetParameter(BackendConfigParameter, schema)
	log.Info().
		Int("entities", schema.Len()).
		Str("parameter", BackendConfigParameter).
		Msg("backend configuration registered")

	return schema, nil
}
