package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique string identifiers for users and tasks.
// Version 7 UUIDs are preferred for their time-ordered layout; when v7
// generation fails the generator falls back to a random v4 value.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
