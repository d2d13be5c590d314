package core

import (
	"fmt"

	"github.com/google/uuid"
)

// ID identifies a report artifact (a block, a source table, a run).
type ID string

// NewID creates a time-ordered identifier (UUID v7), falling back to v4.
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// ParseID validates an externally supplied identifier.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid id %q: %w", s, err)
	}
	return ID(u.String()), nil
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	BlockID  ID
	SourceID ID
)
