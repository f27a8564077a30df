// Package utils holds small shared helpers with no domain logic.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique identifiers for tracing configuration
// loads through log output.
type UUIDGenerator struct {
}

// NewUUIDGenerator returns a ready-to-use generator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUID (version 7), falling back to a
// random UUID when the system clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
