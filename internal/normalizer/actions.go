// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kawsar Ahmed

package normalizer

import "github.com/itskawsar/EasyAdminBundle/models"

// expandActions completes every entity with its four lifecycle sections.
//
// Before expansion, an absent "new.fields" and an absent "edit.fields" are
// each backfilled from "form.fields" when that section defines one. The two
// checks are independent: a user-supplied "new.fields" never loses to the
// form fallback even when "edit.fields" takes it, and vice versa. Only the
// "fields" key is inherited this way; no other form option propagates.
//
// Every action section then gets a fields map, empty when nothing was
// configured, with its entries expanded into canonical records. All other
// entity and section keys pass through unchanged, including the raw "form"
// section itself.
func expandActions(pending []*pendingEntity) error {
	for _, p := range pending {
		backfillFormFields(p, models.ActionEdit)
		backfillFormFields(p, models.ActionNew)

		for _, action := range models.Actions {
			cfg := models.ActionConfig{Fields: models.NewMap[models.FieldConfig]()}

			if section, ok := p.actions[action]; ok && section != nil {
				cfg.Extra = section.Extra

				fields, err := expandFields(action, p.cfg.Class, section.Fields)
				if err != nil {
					return err
				}
				cfg.Fields = fields
			}

			p.cfg.SetAction(action, cfg)
		}

		p.cfg.Form = p.form
	}

	return nil
}

// backfillFormFields copies the raw form fields into the named action when
// that action does not define fields of its own.
func backfillFormFields(p *pendingEntity, action string) {
	if p.form == nil || p.form.Fields == nil {
		return
	}

	section, ok := p.actions[action]
	if !ok || section == nil {
		if p.actions == nil {
			p.actions = make(map[string]*models.RawSection)
		}
		p.actions[action] = &models.RawSection{Fields: p.form.Fields}
		return
	}

	if section.Fields == nil {
		section.Fields = p.form.Fields
	}
}
