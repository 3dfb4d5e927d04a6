package graph

import (
	"bytes"

	"github.com/google/uuid"
)

// ID identifies a node for the lifetime of the process. IDs are random v4
// UUIDs and are never reused.
type ID uuid.UUID

// NilID is the zero ID. It never identifies a stored node.
var NilID ID

// NewID generates a fresh identifier.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID parses the canonical textual form of an ID.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilID, err
	}
	return ID(u), nil
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether id is the zero ID.
func (id ID) IsNil() bool {
	return id == NilID
}

// Compare orders IDs by their bytes. It returns -1, 0 or +1.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}
