package algorithms

import (
	"github.com/dd0wney/cluso-structures/pkg/logging"
)

// PathTable holds, for every item reachable from a root, one fewest-hops path
// from that item to the root.
type PathTable[T comparable] struct {
	root  T
	paths map[T][]T
}

// BuildPathTable relaxes the whole component around root. It needs a finite
// capability, or opts.MaxRounds to bound it; on ErrRoundLimit the table holds
// what was settled so far.
func BuildPathTable[T comparable](root T, c Connected[T], opts SearchOptions) (PathTable[T], error) {
	logger := logging.OrNop(opts.Logger).With(logging.Component("algorithms"))
	timer := logging.StartTimer(logger, "path table", logging.Item("root", root))

	paths, st, err := relax(root, c, nil, opts.MaxRounds)
	table := PathTable[T]{root: root, paths: paths}
	if err != nil {
		logger.Warn("path table truncated", logging.Rounds(st.rounds), logging.Count(len(paths)))
		return table, err
	}
	timer.End(logging.Rounds(st.rounds), logging.Count(len(paths)))
	return table, nil
}

// Root returns the item every path ends at.
func (pt PathTable[T]) Root() T {
	return pt.root
}

// Len returns the number of items with a recorded path, root included.
func (pt PathTable[T]) Len() int {
	return len(pt.paths)
}

// PathFrom returns a copy of the recorded path from item to the root.
func (pt PathTable[T]) PathFrom(item T) ([]T, bool) {
	p, ok := pt.paths[item]
	if !ok {
		return nil, false
	}
	out := make([]T, len(p))
	copy(out, p)
	return out, true
}

// Reachable reports whether item has a recorded path.
func (pt PathTable[T]) Reachable(item T) bool {
	_, ok := pt.paths[item]
	return ok
}
