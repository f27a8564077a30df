// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kawsar Ahmed

package normalizer

import "github.com/itskawsar/EasyAdminBundle/models"

// nameSuffix is appended to a candidate entity name until it no longer
// collides with a name already taken.
const nameSuffix = "_"

// dedupeNames assembles the final schema, guaranteeing unique entity names.
//
// Entities are visited in declaration order, so ties break in favor of
// earlier entries: the first entity keeps the short derived name and each
// later collision grows by one suffix character. The final name is written
// back into the entity configuration, keeping the schema key and the "name"
// value identical.
func dedupeNames(pending []*pendingEntity) *models.Schema {
	schema := models.NewMap[*models.EntityConfig]()

	for _, p := range pending {
		name := p.cfg.Name
		for schema.Has(name) {
			name += nameSuffix
		}

		p.cfg.Name = name
		schema.Set(name, p.cfg)
	}

	return schema
}
