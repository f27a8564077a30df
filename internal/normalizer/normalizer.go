// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kawsar Ahmed

// Package normalizer expands loosely-structured admin backend configuration
// into the canonical entity schema.
//
// Normalization is a linear pipeline of three explicit stages, each
// consuming the previous stage's output:
//
//  1. shape normalization — collapse the shorthand entity forms into one
//     canonical per-entity shape and derive name and label;
//  2. action and field expansion — give every lifecycle action a complete
//     fields map, backfilling "new" and "edit" from the shared "form"
//     section, and expand each field entry into a canonical record;
//  3. name deduplication — guarantee every derived entity name is unique
//     within the result.
//
// The whole pipeline is a pure, single-threaded, in-memory transformation:
// it either returns the expanded schema or fails with one of the two fatal
// configuration errors defined in this package.
package normalizer

import (
	"github.com/itskawsar/EasyAdminBundle/internal/logger"
	"github.com/itskawsar/EasyAdminBundle/models"
)

// Normalizer turns raw entity entries into the canonical backend schema.
type Normalizer struct {
	logger *logger.Logger
}

// New constructs a Normalizer that reports its progress to the given logger.
func New(log *logger.Logger) *Normalizer {
	return &Normalizer{logger: log}
}

// Normalize runs the full pipeline over the raw entries and returns the
// expanded schema, keyed by unique entity name in declaration order.
//
// An empty input is a valid configuration and short-circuits to an empty
// schema. The only failure modes are [MissingPropertyError] and
// [InvalidFieldTypeError], both raised while expanding field entries.
func (n *Normalizer) Normalize(entries []models.RawEntry) (*models.Schema, error) {
	if len(entries) == 0 {
		n.logger.Debug().Msg("no entities configured")
		return models.NewMap[*models.EntityConfig](), nil
	}

	pending := normalizeShape(entries)

	if err := expandActions(pending); err != nil {
		return nil, err
	}

	schema := dedupeNames(pending)
	n.logger.Debug().
		Int("entities", schema.Len()).
		Strs("names", schema.Keys()).
		Msg("backend configuration normalized")

	return schema, nil
}

// pendingEntity carries one entity between pipeline stages: the canonical
// configuration under construction plus the raw sections still to expand.
// Its Name holds the derived candidate until deduplication fixes the final
// value.
type pendingEntity struct {
	cfg     *models.EntityConfig
	actions map[string]*models.RawSection
	form    *models.RawSection
}
