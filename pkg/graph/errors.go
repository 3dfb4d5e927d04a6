package graph

import (
	"errors"
	"fmt"
)

var (
	ErrNodeNotFound = errors.New("node not found")
	ErrNilID        = errors.New("nil node ID")
)

// GraphError carries the failed operation and the offending node.
type GraphError struct {
	Op    string // e.g. "GetNode", "AddEdge"
	ID    ID
	Cause error
}

func (e *GraphError) Error() string {
	if e.ID.IsNil() {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s node %s: %v", e.Op, e.ID, e.Cause)
}

func (e *GraphError) Unwrap() error {
	return e.Cause
}

func notFound(op string, id ID) error {
	if id.IsNil() {
		return &GraphError{Op: op, Cause: ErrNilID}
	}
	return &GraphError{Op: op, ID: id, Cause: ErrNodeNotFound}
}

// IsNotFound reports whether err means a node was absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound) || errors.Is(err, ErrNilID)
}
