package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered request identifiers.
type UUIDGenerator struct {
}

// NewUUIDGenerator returns a UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random UUIDv4 if the clock-based
// generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
