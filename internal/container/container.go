// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kawsar Ahmed

// Package container holds the parameter bag that receives the normalized
// backend schema, mirroring how the hosting framework's dependency
// injection layer stores configuration as named parameters.
package container

import "github.com/itskawsar/EasyAdminBundle/models"

// BackendConfigParameter is the parameter name under which the normalized
// backend schema is registered.
const BackendConfigParameter = "easyadmin.config"

// Container is a minimal parameter bag. Parameters are set once during
// configuration loading and read-only afterwards; the bag itself performs
// no synchronization because loading is single-threaded.
type Container struct {
	parameters map[string]any
}

// New returns an empty container.
func New() *Container {
	return &Container{parameters: make(map[string]any)}
}

// SetParameter stores value under name, replacing any previous value.
func (c *Container) SetParameter(name string, value any) {
	c.parameters[name] = value
}

// Parameter returns the value stored under name and whether it is set.
func (c *Container) Parameter(name string) (any, bool) {
	value, ok := c.parameters[name]
	return value, ok
}

// BackendConfig returns the normalized schema registered by the extension,
// or nil when no configuration has been loaded.
func (c *Container) BackendConfig() *models.Schema {
	value, ok := c.parameters[BackendConfigParameter]
	if !ok {
		return nil
	}

	schema, ok := value.(*models.Schema)
	if !ok {
		return nil
	}

	return schema
}
