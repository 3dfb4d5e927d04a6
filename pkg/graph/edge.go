package graph

import "fmt"

// Edge is an unordered pair of node IDs. Edges built with NewEdge are
// canonical: A never orders after B, so (a, b) and (b, a) compare equal.
type Edge struct {
	A ID
	B ID
}

// NewEdge returns the canonical edge joining a and b.
func NewEdge(a, b ID) Edge {
	if a.Compare(b) > 0 {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Has reports whether id is an endpoint of e.
func (e Edge) Has(id ID) bool {
	return e.A == id || e.B == id
}

// Other returns the endpoint opposite id. For a self-loop it returns id.
// The result is undefined when id is not an endpoint.
func (e Edge) Other(id ID) ID {
	if e.A == id {
		return e.B
	}
	return e.A
}

// IsLoop reports whether both endpoints are the same node.
func (e Edge) IsLoop() bool {
	return e.A == e.B
}

func (e Edge) String() string {
	return fmt.Sprintf("{%s %s}", e.A, e.B)
}
