// Package tree is a rooted tree stored in a slice with parent and child links
// held as indices.
package tree

// NoParent is the parent index of the root.
const NoParent = -1

type node[T comparable] struct {
	value    T
	parent   int
	children []int
}

// Tree is an index-linked rooted tree. Node ids are assigned in insertion
// order starting at 0 for the root.
type Tree[T comparable] struct {
	nodes []node[T]
}

// New returns an empty tree. The first AddChild call with NoParent sets the
// root.
func New[T comparable]() *Tree[T] {
	return &Tree[T]{}
}

// WithHead returns a tree whose root holds value.
func WithHead[T comparable](value T) *Tree[T] {
	t := New[T]()
	t.nodes = append(t.nodes, node[T]{value: value, parent: NoParent})
	return t
}

// AddChild attaches value under parent and returns the new id. It reports
// false when parent does not exist, or when NoParent is given for a tree that
// already has a root.
func (t *Tree[T]) AddChild(value T, parent int) (int, bool) {
	if parent == NoParent {
		if len(t.nodes) != 0 {
			return NoParent, false
		}
		t.nodes = append(t.nodes, node[T]{value: value, parent: NoParent})
		return 0, true
	}
	if !t.valid(parent) {
		return NoParent, false
	}

	id := len(t.nodes)
	t.nodes = append(t.nodes, node[T]{value: value, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id, true
}

func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

func (t *Tree[T]) Get(id int) (T, bool) {
	if !t.valid(id) {
		var zero T
		return zero, false
	}
	return t.nodes[id].value, true
}

// Parent returns the parent id, or false for the root and unknown ids.
func (t *Tree[T]) Parent(id int) (int, bool) {
	if !t.valid(id) || t.nodes[id].parent == NoParent {
		return NoParent, false
	}
	return t.nodes[id].parent, true
}

// Children returns a copy of the child ids of id in insertion order.
func (t *Tree[T]) Children(id int) []int {
	if !t.valid(id) {
		return nil
	}
	return append([]int(nil), t.nodes[id].children...)
}

// Find returns the lowest id holding value.
func (t *Tree[T]) Find(value T) (int, bool) {
	for id, n := range t.nodes {
		if n.value == value {
			return id, true
		}
	}
	return NoParent, false
}

// PathToNode returns the ids from the root down to id inclusive.
func (t *Tree[T]) PathToNode(id int) ([]int, bool) {
	if !t.valid(id) {
		return nil, false
	}

	var path []int
	for cur := id; cur != NoParent; cur = t.nodes[cur].parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// Leaves returns the ids of childless nodes in ascending order.
func (t *Tree[T]) Leaves() []int {
	var out []int
	for id, n := range t.nodes {
		if len(n.children) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// LeafValues returns the values of Leaves in the same order.
func (t *Tree[T]) LeafValues() []T {
	leaves := t.Leaves()
	out := make([]T, len(leaves))
	for i, id := range leaves {
		out[i] = t.nodes[id].value
	}
	return out
}

// Walk visits nodes depth first in pre-order, children in insertion order,
// with each node's depth. Returning false from fn stops the walk.
func (t *Tree[T]) Walk(fn func(id, depth int, value T) bool) {
	if len(t.nodes) == 0 {
		return
	}

	type entry struct{ id, depth int }
	stack := []entry{{0, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[e.id]
		if !fn(e.id, e.depth, n.value) {
			return
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, entry{n.children[i], e.depth + 1})
		}
	}
}

func (t *Tree[T]) valid(id int) bool {
	return id >= 0 && id < len(t.nodes)
}
