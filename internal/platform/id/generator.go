package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for requests and records.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues time-ordered UUIDv7 strings.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return value.String(), nil
}

// Valid reports whether raw parses as a UUID. Incoming request ids are only trusted when valid.
func Valid(raw string) bool {
	_, err := uuid.Parse(raw)
	return err == nil
}
