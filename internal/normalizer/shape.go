// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kawsar Ahmed

package normalizer

import (
	"strings"

	"github.com/itskawsar/EasyAdminBundle/models"
)

// normalizeShape collapses the two accepted entity shapes into one canonical
// per-entity form and derives the candidate name and the label.
//
// The candidate name is an explicit "name" option if present, otherwise the
// last namespace segment of the class. The label is
// resolved with the first match of: an explicit "label" option, the derived
// name for positional entries, the original mapping key otherwise. An
// explicit label winning over the key keeps the pipeline idempotent when a
// canonical schema is fed back in (its keys are derived names, not labels).
//
// Entries whose derived names collide are all kept, in declaration order;
// the deduplication stage renames later ones. Duplicate keys inside a single
// options mapping follow last-write-wins, as documented on models.Map.
func normalizeShape(entries []models.RawEntry) []*pendingEntity {
	pending := make([]*pendingEntity, 0, len(entries))

	for _, entry := range entries {
		options := entry.Spec.Options
		if options == nil {
			// shorthand form: the value is the class name
			options = &models.RawOptions{Class: entry.Spec.Class}
		}

		name := options.Name
		if name == "" {
			name = entityName(options.Class)
		}

		label := options.Label
		if label == "" {
			if entry.Indexed {
				label = name
			} else {
				label = entry.Label
			}
		}

		pending = append(pending, &pendingEntity{
			cfg: &models.EntityConfig{
				Class: options.Class,
				Label: label,
				Name:  name,
				Extra: options.Extra,
			},
			actions: options.Actions,
			form:    options.Form,
		})
	}

	return pending
}

// entityName derives the short entity name from a fully-qualified class
// name: the last segment after any backslash, slash or dot separator.
func entityName(class string) string {
	if i := strings.LastIndexAny(class, `\/.`); i >= 0 {
		return class[i+1:]
	}

	return class
}
