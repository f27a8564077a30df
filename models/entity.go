// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kawsar Ahmed

// Package models defines the raw and canonical document models for admin
// backend configuration.
//
// The raw side mirrors the loosely-structured user input (entities given as
// bare class names or option mappings, fields given as strings or mappings).
// The canonical side is the fully expanded schema produced by the
// normalizer: every entity carries class, label, a unique name, and all
// four lifecycle action sections with their field records.
package models

import "encoding/json"

// Lifecycle action names. Every canonical entity configuration carries one
// section per action.
const (
	ActionList = "list"
	ActionShow = "show"
	ActionNew  = "new"
	ActionEdit = "edit"
)

// Actions lists the lifecycle actions in canonical order.
var Actions = []string{ActionList, ActionShow, ActionNew, ActionEdit}

// FieldConfig is one canonical field record: the entity property it reads
// or writes, plus any display options carried through unmodified.
type FieldConfig struct {
	// Property is the attribute name on the entity class. It always equals
	// the record's key in the enclosing fields map.
	Property string

	// Extra preserves the remaining field options (label, type hints, ...)
	// in input order. Nil when the field was given in shorthand form.
	Extra *Map[any]
}

// ActionConfig is one canonical lifecycle section.
type ActionConfig struct {
	// Fields maps property name to field record, in input order. Never nil,
	// possibly empty.
	Fields *Map[FieldConfig]

	// Extra preserves the remaining section keys in input order.
	Extra *Map[any]
}

// EntityConfig is the canonical configuration of one entity.
type EntityConfig struct {
	// Class is the fully-qualified class-name-like identifier.
	Class string

	// Label is the human-readable display name.
	Label string

	// Name is the derived identifier, unique across the whole schema. It
	// always equals the entity's key in the enclosing schema map.
	Name string

	// List, Show, New and Edit are the four expanded lifecycle sections.
	List ActionConfig
	Show ActionConfig
	New  ActionConfig
	Edit ActionConfig

	// Form is the shared form section passed through unexpanded; its fields
	// only serve as the fallback for absent New and Edit fields.
	Form *RawSection

	// Extra preserves all other entity option keys in input order.
	Extra *Map[any]
}

// Schema is the normalized result: entity name to canonical configuration,
// in the order the entities were declared.
type Schema = Map[*EntityConfig]

// Action returns the named lifecycle section.
func (e *EntityConfig) Action(name string) ActionConfig {
	switch name {
	case ActionList:
		return e.List
	case ActionShow:
		return e.Show
	case ActionNew:
		return e.New
	default:
		return e.Edit
	}
}

// SetAction replaces the named lifecycle section.
func (e *EntityConfig) SetAction(name string, cfg ActionConfig) {
	switch name {
	case ActionList:
		e.List = cfg
	case ActionShow:
		e.Show = cfg
	case ActionNew:
		e.New = cfg
	case ActionEdit:
		e.Edit = cfg
	}
}

// configMap flattens the entity into an ordered mapping for emission:
// class, label and name first, pass-through keys in input order, the raw
// form section, then the four expanded actions.
func (e *EntityConfig) configMap() *Map[any] {
	m := NewMap[any]()
	m.Set("class", e.Class)
	m.Set("label", e.Label)
	m.Set("name", e.Name)
	e.Extra.Range(func(key string, value any) bool {
		m.Set(key, value)
		return true
	})
	if e.Form != nil {
		m.Set("form", e.Form)
	}
	for _, action := range Actions {
		m.Set(action, e.Action(action))
	}

	return m
}

// MarshalYAML emits the entity in canonical key order.
func (e *EntityConfig) MarshalYAML() (any, error) {
	return e.configMap(), nil
}

// MarshalJSON mirrors MarshalYAML for JSON output.
func (e *EntityConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.configMap())
}

// configMap flattens the section for emission: fields first, then
// pass-through keys.
func (a ActionConfig) configMap() *Map[any] {
	m := NewMap[any]()
	m.Set("fields", a.Fields)
	a.Extra.Range(func(key string, value any) bool {
		m.Set(key, value)
		return true
	})

	return m
}

// MarshalYAML emits the section with its expanded fields map first.
func (a ActionConfig) MarshalYAML() (any, error) {
	return a.configMap(), nil
}

// MarshalJSON mirrors MarshalYAML for JSON output.
func (a ActionConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.configMap())
}

// configMap flattens the record for emission: property first, then the
// remaining options in input order.
func (f FieldConfig) configMap() *Map[any] {
	m := NewMap[any]()
	m.Set("property", f.Property)
	f.Extra.Range(func(key string, value any) bool {
		m.Set(key, value)
		return true
	})

	return m
}

// MarshalYAML emits the record with property first.
func (f FieldConfig) MarshalYAML() (any, error) {
	return f.configMap(), nil
}

// MarshalJSON mirrors MarshalYAML for JSON output.
func (f FieldConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.configMap())
}
