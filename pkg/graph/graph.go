// Package graph is an append-only store of identity-tagged values joined by
// undirected edges.
//
// A Graph is owned by one goroutine at a time. Wrap it in a SyncGraph when it
// must be shared.
package graph

import (
	"github.com/dd0wney/cluso-structures/pkg/logging"
)

// Graph stores nodes in a dense arena, addressed through an ID -> slot index,
// and a set of canonical edges.
type Graph[T any] struct {
	nodes []Node[T]
	index map[ID]int

	// edgeSet answers membership; edges and adj keep insertion order so
	// that neighbour enumeration is stable.
	edgeSet map[Edge]struct{}
	edges   []Edge
	adj     map[ID][]Edge

	cfg config
}

// New returns an empty graph.
func New[T any](opts ...Option) *Graph[T] {
	g := &Graph[T]{
		index:   make(map[ID]int),
		edgeSet: make(map[Edge]struct{}),
		adj:     make(map[ID][]Edge),
		cfg:     config{logger: logging.NewNopLogger()},
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}
	g.reportSize()
	return g
}

// AddNode appends n and returns its ID. A node with a nil ID, or one whose ID
// is already stored, is given a fresh ID so that identifiers stay unique.
func (g *Graph[T]) AddNode(n Node[T]) ID {
	if _, taken := g.index[n.id]; taken || n.id.IsNil() {
		n.id = NewID()
	}
	g.index[n.id] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	g.cfg.logger.Debug("node added", logging.NodeID(n.id))
	g.reportSize()
	return n.id
}

// AddNodeWithValue wraps value in a new node and appends it.
func (g *Graph[T]) AddNodeWithValue(value T) ID {
	return g.AddNode(NewNode(value))
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph[T]) EdgeCount() int {
	return len(g.edges)
}

// NodeIDs returns every node ID in insertion order.
func (g *Graph[T]) NodeIDs() []ID {
	ids := make([]ID, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.id
	}
	return ids
}

// Contains reports whether id names a stored node.
func (g *Graph[T]) Contains(id ID) bool {
	_, ok := g.index[id]
	return ok
}

// GetNode returns a copy of the node with the given ID.
func (g *Graph[T]) GetNode(id ID) (Node[T], error) {
	slot, ok := g.index[id]
	if !ok {
		return Node[T]{}, notFound("GetNode", id)
	}
	return g.nodes[slot].clone(), nil
}

// GetNodeMut returns a pointer into the arena. The pointer is invalidated by
// the next AddNode call; do not keep it past that.
func (g *Graph[T]) GetNodeMut(id ID) (*Node[T], error) {
	slot, ok := g.index[id]
	if !ok {
		return nil, notFound("GetNodeMut", id)
	}
	return &g.nodes[slot], nil
}

// UpdateNode runs fn against the stored value in place.
func (g *Graph[T]) UpdateNode(id ID, fn func(value *T)) error {
	slot, ok := g.index[id]
	if !ok {
		return notFound("UpdateNode", id)
	}
	fn(&g.nodes[slot].Value)
	return nil
}

// GetNodeValues looks up every id and returns one result per position, with
// Found false where the id is unknown.
func (g *Graph[T]) GetNodeValues(ids []ID) []Lookup[T] {
	out := make([]Lookup[T], len(ids))
	for i, id := range ids {
		if slot, ok := g.index[id]; ok {
			out[i] = Lookup[T]{Value: cloneValue(g.nodes[slot].Value), Found: true}
		}
	}
	return out
}

// AddEdge joins a and b. Both must already be stored; otherwise the edge set
// is left untouched and a *GraphError wrapping ErrNodeNotFound is returned.
// Adding an existing edge in either orientation is a no-op.
func (g *Graph[T]) AddEdge(a, b ID) error {
	for _, id := range [2]ID{a, b} {
		if !g.Contains(id) {
			err := notFound("AddEdge", id)
			g.cfg.logger.Warn("edge rejected",
				logging.String("a", a.String()),
				logging.String("b", b.String()),
				logging.Error(err))
			if g.cfg.metrics != nil {
				g.cfg.metrics.RecordRejectedEdge()
			}
			return err
		}
	}

	e := NewEdge(a, b)
	if _, dup := g.edgeSet[e]; dup {
		return nil
	}
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.adj[e.A] = append(g.adj[e.A], e)
	if !e.IsLoop() {
		g.adj[e.B] = append(g.adj[e.B], e)
	}

	g.cfg.logger.Debug("edge added", logging.String("edge", e.String()))
	g.reportSize()
	return nil
}

// HasEdge reports whether a and b are joined, in either orientation.
func (g *Graph[T]) HasEdge(a, b ID) bool {
	_, ok := g.edgeSet[NewEdge(a, b)]
	return ok
}

// Edges returns all edges in insertion order.
func (g *Graph[T]) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// GetNodeEdges returns the edges with id as an endpoint, in insertion order.
func (g *Graph[T]) GetNodeEdges(id ID) []Edge {
	edges := g.adj[id]
	if len(edges) == 0 {
		return nil
	}
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

// GetNodeNeighbors returns the opposite endpoint of every edge touching id.
// A self-loop makes id its own neighbour.
func (g *Graph[T]) GetNodeNeighbors(id ID) []ID {
	edges := g.adj[id]
	if len(edges) == 0 {
		return nil
	}
	out := make([]ID, 0, len(edges))
	for _, e := range edges {
		// canonical edges are unique, so each neighbour appears once
		out = append(out, e.Other(id))
	}
	return out
}

// Neighbors makes a Graph usable as a connectivity capability over IDs.
func (g *Graph[T]) Neighbors(id ID) []ID {
	return g.GetNodeNeighbors(id)
}

func (g *Graph[T]) reportSize() {
	if g.cfg.metrics != nil {
		g.cfg.metrics.UpdateGraphSize(len(g.nodes), len(g.edges))
	}
}
