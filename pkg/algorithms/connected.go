package algorithms

// Connected is the only capability the path search needs: the items one hop
// away from item. Order matters only for tie-breaking between equally short
// paths; duplicates are tolerated.
//
// Searches assume the relation is symmetric. For a one-way relation the
// returned path follows the reverse hops, from start back towards end.
type Connected[T comparable] interface {
	Neighbors(item T) []T
}

// NeighborFunc adapts a plain function to Connected.
type NeighborFunc[T comparable] func(item T) []T

func (f NeighborFunc[T]) Neighbors(item T) []T {
	return f(item)
}

// frontier is an insertion-ordered set, so that every round expands items in
// the order they were discovered.
type frontier[T comparable] struct {
	items []T
	seen  map[T]struct{}
}

func newFrontier[T comparable]() *frontier[T] {
	return &frontier[T]{seen: make(map[T]struct{})}
}

func (f *frontier[T]) add(item T) {
	if _, ok := f.seen[item]; ok {
		return
	}
	f.seen[item] = struct{}{}
	f.items = append(f.items, item)
}

func (f *frontier[T]) empty() bool {
	return len(f.items) == 0
}
