package graph

import "sync"

// SyncGraph guards a Graph with a read/write lock. Lookups and neighbour
// queries share the lock; structural mutation and UpdateNode hold it
// exclusively. Unlike Graph it offers no GetNodeMut, since a pointer into the
// arena would escape the lock.
type SyncGraph[T any] struct {
	mu sync.RWMutex
	g  *Graph[T]
}

// NewSync returns an empty, lock-guarded graph.
func NewSync[T any](opts ...Option) *SyncGraph[T] {
	return &SyncGraph[T]{g: New[T](opts...)}
}

// Synchronized takes ownership of g. The caller must stop using g directly.
func Synchronized[T any](g *Graph[T]) *SyncGraph[T] {
	return &SyncGraph[T]{g: g}
}

func (s *SyncGraph[T]) AddNode(n Node[T]) ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.AddNode(n)
}

func (s *SyncGraph[T]) AddNodeWithValue(value T) ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.AddNodeWithValue(value)
}

func (s *SyncGraph[T]) AddEdge(a, b ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.AddEdge(a, b)
}

// UpdateNode runs fn under the write lock. fn must not call back into s.
func (s *SyncGraph[T]) UpdateNode(id ID, fn func(value *T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.UpdateNode(id, fn)
}

func (s *SyncGraph[T]) GetNode(id ID) (Node[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.GetNode(id)
}

func (s *SyncGraph[T]) GetNodeValues(ids []ID) []Lookup[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.GetNodeValues(ids)
}

func (s *SyncGraph[T]) GetNodeEdges(id ID) []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.GetNodeEdges(id)
}

func (s *SyncGraph[T]) GetNodeNeighbors(id ID) []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.GetNodeNeighbors(id)
}

// Neighbors takes the read lock per call, so a search over a SyncGraph sees
// each node's neighbours atomically but not the graph as a whole.
func (s *SyncGraph[T]) Neighbors(id ID) []ID {
	return s.GetNodeNeighbors(id)
}

func (s *SyncGraph[T]) HasEdge(a, b ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.HasEdge(a, b)
}

func (s *SyncGraph[T]) NodeIDs() []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.NodeIDs()
}

func (s *SyncGraph[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.Len()
}

func (s *SyncGraph[T]) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.EdgeCount()
}

// Read runs fn with the read lock held, for multi-step queries that need a
// consistent view. fn must not mutate g.
func (s *SyncGraph[T]) Read(fn func(g *Graph[T])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.g)
}
