package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// ── Set / Get ─────────────────────────────────────────────────────────────────

// TestMap_SetGet verifies that stored values are retrievable by key.
func TestMap_SetGet(t *testing.T) {
	m := NewMap[int]()
	m.Set("one", 1)
	m.Set("two", 2)

	value, ok := m.Get("one")
	require.True(t, ok)
	assert.Equal(t, 1, value)

	value, ok = m.Get("two")
	require.True(t, ok)
	assert.Equal(t, 2, value)
}

// TestMap_GetMissing verifies that a missing key reports absence.
func TestMap_GetMissing(t *testing.T) {
	m := NewMap[string]()

	_, ok := m.Get("missing")
	assert.False(t, ok)
	assert.False(t, m.Has("missing"))
}

// TestMap_ZeroValueUsable verifies that the zero value accepts entries.
func TestMap_ZeroValueUsable(t *testing.T) {
	var m Map[string]
	m.Set("key", "value")

	value, ok := m.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", value)
}

// ── ordering ──────────────────────────────────────────────────────────────────

// TestMap_KeysInsertionOrder verifies that Keys returns keys in the order
// they were first inserted.
func TestMap_KeysInsertionOrder(t *testing.T) {
	m := NewMap[int]()
	m.Set("zebra", 1)
	m.Set("apple", 2)
	m.Set("mango", 3)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, m.Keys())
}

// TestMap_OverwriteKeepsPosition verifies that re-setting an existing key
// replaces the value without moving the key.
func TestMap_OverwriteKeepsPosition(t *testing.T) {
	m := NewMap[int]()
	m.Set("first", 1)
	m.Set("second", 2)
	m.Set("first", 10)

	assert.Equal(t, []string{"first", "second"}, m.Keys())
	value, _ := m.Get("first")
	assert.Equal(t, 10, value)
	assert.Equal(t, 2, m.Len())
}

// TestMap_RangeOrder verifies that Range visits entries in insertion order
// and stops when the callback returns false.
func TestMap_RangeOrder(t *testing.T) {
	m := NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var visited []string
	m.Range(func(key string, value int) bool {
		visited = append(visited, key)
		return key != "b"
	})

	assert.Equal(t, []string{"a", "b"}, visited)
}

// ── marshaling ────────────────────────────────────────────────────────────────

// TestMap_MarshalYAML_PreservesOrder verifies that YAML output lists keys
// in insertion order even when it differs from lexical order.
func TestMap_MarshalYAML_PreservesOrder(t *testing.T) {
	m := NewMap[int]()
	m.Set("zebra", 1)
	m.Set("apple", 2)

	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "zebra: 1\napple: 2\n", string(out))
}

// TestMap_MarshalYAML_Nested verifies that nested ordered maps keep their
// own order through the value encoder.
func TestMap_MarshalYAML_Nested(t *testing.T) {
	inner := NewMap[any]()
	inner.Set("b", 2)
	inner.Set("a", 1)

	m := NewMap[any]()
	m.Set("outer", inner)

	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "outer:\n    b: 2\n    a: 1\n", string(out))
}

// TestMap_MarshalJSON_PreservesOrder verifies that JSON output lists keys
// in insertion order.
func TestMap_MarshalJSON_PreservesOrder(t *testing.T) {
	m := NewMap[int]()
	m.Set("zebra", 1)
	m.Set("apple", 2)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"zebra":1,"apple":2}`, string(out))
	assert.Equal(t, `{"zebra":1,"apple":2}`, string(out))
}

// TestMap_MarshalJSON_Empty verifies that an empty map encodes as an empty
// object.
func TestMap_MarshalJSON_Empty(t *testing.T) {
	out, err := json.Marshal(NewMap[int]())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))
}

// TestMap_MarshalNil verifies that a nil map encodes as an empty mapping in
// both formats.
func TestMap_MarshalNil(t *testing.T) {
	var m *Map[int]

	jsonOut, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(jsonOut))

	yamlOut, err := m.MarshalYAML()
	require.NoError(t, err)
	node, ok := yamlOut.(*yaml.Node)
	require.True(t, ok)
	assert.Equal(t, yaml.MappingNode, node.Kind)
	assert.Empty(t, node.Content)
}
