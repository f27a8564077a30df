// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kawsar Ahmed

package normalizer

import "github.com/itskawsar/EasyAdminBundle/models"

// expandFields turns the ordered raw field entries of one action into the
// canonical fields map, keyed by property name in input order.
//
// A shorthand string entry becomes a record with just that property. A long
// form entry must carry a string "property" option; the record keeps every
// other option untouched. A later entry repeating an earlier property
// silently replaces it, keeping the original position.
func expandFields(action, class string, raw []models.RawField) (*models.Map[models.FieldConfig], error) {
	fields := models.NewMap[models.FieldConfig]()

	for _, entry := range raw {
		switch entry.Kind {
		case models.FieldName:
			fields.Set(entry.Name, models.FieldConfig{Property: entry.Name})

		case models.FieldProps:
			property, ok := propertyOf(entry.Props)
			if !ok {
				return nil, &MissingPropertyError{Action: action, Class: class}
			}

			fields.Set(property, models.FieldConfig{
				Property: property,
				Extra:    withoutProperty(entry.Props),
			})

		default:
			return nil, &InvalidFieldTypeError{Action: action, Class: class}
		}
	}

	return fields, nil
}

// propertyOf extracts the mandatory "property" option. Only non-empty
// strings qualify: the property names a map key in the canonical schema.
func propertyOf(props *models.Map[any]) (string, bool) {
	value, ok := props.Get("property")
	if !ok {
		return "", false
	}

	property, ok := value.(string)
	if !ok || property == "" {
		return "", false
	}

	return property, true
}

// withoutProperty copies the field options minus the "property" key, which
// lives in the record itself.
func withoutProperty(props *models.Map[any]) *models.Map[any] {
	extra := models.NewMap[any]()
	props.Range(func(key string, value any) bool {
		if key != "property" {
			extra.Set(key, value)
		}
		return true
	})

	return extra
}
