package graph

// Cloner is implemented by values that need a deep copy when handed out by
// GetNode and GetNodeValues. Other values are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// Node holds one stored value together with its identity.
type Node[T any] struct {
	id    ID
	Value T
}

// NewNode creates a standalone node with a fresh ID.
func NewNode[T any](value T) Node[T] {
	return Node[T]{id: NewID(), Value: value}
}

// ID returns the node's identifier.
func (n Node[T]) ID() ID {
	return n.id
}

// clone returns a copy of n whose value is detached from the stored one.
func (n Node[T]) clone() Node[T] {
	return Node[T]{id: n.id, Value: cloneValue(n.Value)}
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// Lookup is one positional result of GetNodeValues.
type Lookup[T any] struct {
	Value T
	Found bool
}
