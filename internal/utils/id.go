package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a globally unique, time-sortable identifier (UUIDv7).
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}
