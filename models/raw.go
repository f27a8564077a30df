// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kawsar Ahmed

package models

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// FieldKind discriminates the accepted shapes of a raw field entry.
type FieldKind int

const (
	// FieldInvalid marks an entry that is neither a string nor a mapping.
	// The parser records the kind instead of failing so that the expansion
	// stage can report the offending action and entity class.
	FieldInvalid FieldKind = iota

	// FieldName marks the shorthand form: a bare property-name string.
	FieldName

	// FieldProps marks the long form: a mapping of field options that must
	// contain a "property" key.
	FieldProps
)

// RawEntry is one top-level entity entry exactly as it appeared in the
// source document, before any normalization.
type RawEntry struct {
	// Label is the original mapping key. Empty when the entry came from a
	// sequence position.
	Label string

	// Indexed reports that the entry key was positional (a sequence index
	// or an integer mapping key), meaning no custom label was given.
	Indexed bool

	// Spec is the entry value in one of its two accepted shapes.
	Spec RawEntity
}

// RawEntity is the union of the two accepted entity shapes: a bare
// fully-qualified class-name string, or a mapping of options. Exactly one
// of Class and Options is set; Options being nil marks the shorthand form.
type RawEntity struct {
	Class   string
	Options *RawOptions
}

// RawOptions is the long entity form with its known keys decoded and every
// other key preserved, in order, for pass-through.
type RawOptions struct {
	// Class is the fully-qualified class-name-like identifier.
	Class string

	// Label is the explicit label option, empty when not given.
	Label string

	// Name is an explicit name option, typically carried by canonical
	// documents fed back through the pipeline. When set it becomes the
	// candidate name; the deduplication stage still enforces uniqueness.
	Name string

	// Actions holds the raw lifecycle sections, keyed by action name.
	Actions map[string]*RawSection

	// Form is the shared form section consulted when backfilling the
	// "new" and "edit" fields.
	Form *RawSection

	// Extra preserves all remaining option keys in input order.
	Extra *Map[any]
}

// RawSection is one raw action (or form) section: an ordered list of field
// entries plus any other section keys.
type RawSection struct {
	Fields []RawField
	Extra  *Map[any]
}

// RawField is the union of the accepted field-entry shapes, tagged by Kind.
type RawField struct {
	Kind FieldKind

	// Name is the property name of the shorthand string form.
	Name string

	// Props holds the option mapping of the long form, in input order,
	// including the "property" key when present.
	Props *Map[any]
}

// sectionMap flattens the section into an ordered mapping for emission:
// the raw fields list first, then pass-through keys.
func (s *RawSection) sectionMap() *Map[any] {
	m := NewMap[any]()
	if s.Fields != nil {
		m.Set("fields", s.Fields)
	}
	s.Extra.Range(func(key string, value any) bool {
		m.Set(key, value)
		return true
	})

	return m
}

// MarshalYAML emits the section with its fields list untouched. Used for the
// pass-through "form" section, which is never expanded.
func (s *RawSection) MarshalYAML() (any, error) {
	return s.sectionMap(), nil
}

// MarshalJSON mirrors MarshalYAML for JSON output.
func (s *RawSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.sectionMap())
}

// MarshalYAML emits the field entry in its original shape: a plain string
// for the shorthand form, the option mapping for the long form.
func (f RawField) MarshalYAML() (any, error) {
	switch f.Kind {
	case FieldName:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}, nil
	default:
		return f.Props, nil
	}
}

// MarshalJSON mirrors MarshalYAML for JSON output.
func (f RawField) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case FieldName:
		return json.Marshal(f.Name)
	default:
		return json.Marshal(f.Props)
	}
}
