// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kawsar Ahmed

// Package parser decodes a raw YAML configuration block into the ordered
// raw document model.
//
// All shape ambiguity of the input (entities given as bare class names or
// option mappings, fields given as strings or mappings) is resolved here,
// at the document boundary, into the tagged unions of the models package.
// The normalizer itself never inspects dynamic types.
//
// Decoding works on yaml.Node instead of map[string]any because entry
// order is part of the contract: entity order breaks name-collision ties
// and field order drives display order.
package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/itskawsar/EasyAdminBundle/models"
)

// Parse decodes data as a YAML document and returns the raw entity entries
// in declaration order.
//
// The document may be a mapping (entity label to spec), a sequence of
// positional specs, or either of them nested under a single top-level
// "entities" key. An empty document yields an empty, non-error result.
func Parse(data []byte) ([]models.RawEntry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("error decoding backend configuration: %w", err)
	}

	if root.Kind == 0 {
		// empty document
		return nil, nil
	}

	return ParseNode(&root)
}

// ParseNode decodes an already-parsed YAML node. See [Parse] for the
// accepted document shapes.
func ParseNode(node *yaml.Node) ([]models.RawEntry, error) {
	node = resolve(node)
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		node = resolve(node.Content[0])
	}

	node = unwrapEntities(node)

	switch node.Kind {
	case yaml.MappingNode:
		return parseMapping(node)
	case yaml.SequenceNode:
		return parseSequence(node)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		return nil, ErrInvalidDocument
	default:
		return nil, ErrInvalidDocument
	}
}

// unwrapEntities descends into a single top-level "entities" key, the way
// the hosting framework nests the entity mapping inside its own block.
func unwrapEntities(node *yaml.Node) *yaml.Node {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return node
	}

	key := resolve(node.Content[0])
	if key.Kind == yaml.ScalarNode && key.Value == "entities" {
		return resolve(node.Content[1])
	}

	return node
}

func parseMapping(node *yaml.Node) ([]models.RawEntry, error) {
	entries := make([]models.RawEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i])

		entry := models.RawEntry{}
		if key.Tag == "!!int" {
			entry.Indexed = true
		} else {
			entry.Label = key.Value
		}

		spec, err := parseEntity(resolve(node.Content[i+1]))
		if err != nil {
			return nil, err
		}
		entry.Spec = spec

		entries = append(entries, entry)
	}

	return entries, nil
}

func parseSequence(node *yaml.Node) ([]models.RawEntry, error) {
	entries := make([]models.RawEntry, 0, len(node.Content))
	for _, item := range node.Content {
		spec, err := parseEntity(resolve(item))
		if err != nil {
			return nil, err
		}

		entries = append(entries, models.RawEntry{Indexed: true, Spec: spec})
	}

	return entries, nil
}

// parseEntity resolves the entity-shape union: a scalar is the shorthand
// class-name form, a mapping is the long option form.
func parseEntity(node *yaml.Node) (models.RawEntity, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return models.RawEntity{}, nil
		}
		return models.RawEntity{Class: node.Value}, nil

	case yaml.MappingNode:
		return models.RawEntity{Options: parseOptions(node)}, nil

	default:
		return models.RawEntity{}, fmt.Errorf("%w: entity entries must be strings or mappings", ErrInvalidDocument)
	}
}

func parseOptions(node *yaml.Node) *models.RawOptions {
	options := &models.RawOptions{
		Actions: make(map[string]*models.RawSection),
		Extra:   models.NewMap[any](),
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i]).Value
		value := resolve(node.Content[i+1])

		switch key {
		case "class":
			options.Class = value.Value
		case "label":
			options.Label = value.Value
		case "name":
			options.Name = value.Value
		case models.ActionList, models.ActionShow, models.ActionNew, models.ActionEdit:
			options.Actions[key] = parseSection(value)
		case "form":
			options.Form = parseSection(value)
		default:
			options.Extra.Set(key, decodeValue(value))
		}
	}

	return options
}

// parseSection decodes one action (or form) section. A null or non-mapping
// section decodes as empty; its fields are initialized by the expansion
// stage.
func parseSection(node *yaml.Node) *models.RawSection {
	section := &models.RawSection{Extra: models.NewMap[any]()}
	if node.Kind != yaml.MappingNode {
		return section
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i]).Value
		value := resolve(node.Content[i+1])

		if key == "fields" {
			section.Fields = parseFields(value)
			continue
		}
		section.Extra.Set(key, decodeValue(value))
	}

	return section
}

// parseFields decodes a fields list. The raw form is a sequence; the
// canonical form fed back through the pipeline is a mapping, whose keys are
// ignored because the "property" option governs the record key.
func parseFields(node *yaml.Node) []models.RawField {
	switch node.Kind {
	case yaml.SequenceNode:
		fields := make([]models.RawField, 0, len(node.Content))
		for _, item := range node.Content {
			fields = append(fields, parseField(resolve(item)))
		}
		return fields

	case yaml.MappingNode:
		fields := make([]models.RawField, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			fields = append(fields, parseField(resolve(node.Content[i+1])))
		}
		return fields

	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		return []models.RawField{{Kind: models.FieldInvalid}}

	default:
		return []models.RawField{{Kind: models.FieldInvalid}}
	}
}

// parseField resolves the field-shape union. Entries that are neither
// strings nor mappings are tagged invalid rather than rejected here: the
// expansion stage raises the error together with the entity class and
// action name.
func parseField(node *yaml.Node) models.RawField {
	switch {
	case node.Kind == yaml.ScalarNode && node.Tag == "!!str":
		return models.RawField{Kind: models.FieldName, Name: node.Value}
	case node.Kind == yaml.MappingNode:
		return models.RawField{Kind: models.FieldProps, Props: decodeMapping(node)}
	default:
		return models.RawField{Kind: models.FieldInvalid}
	}
}

// decodeValue converts an arbitrary node into Go values, using ordered maps
// for mappings so pass-through keys survive a round trip unreordered.
func decodeValue(node *yaml.Node) any {
	switch node.Kind {
	case yaml.MappingNode:
		return decodeMapping(node)

	case yaml.SequenceNode:
		values := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			values = append(values, decodeValue(resolve(item)))
		}
		return values

	default:
		var value any
		if err := node.Decode(&value); err != nil {
			return node.Value
		}
		return value
	}
}

func decodeMapping(node *yaml.Node) *models.Map[any] {
	m := models.NewMap[any]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		m.Set(resolve(node.Content[i]).Value, decodeValue(resolve(node.Content[i+1])))
	}

	return m
}

// resolve follows alias nodes to their anchor.
func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}
