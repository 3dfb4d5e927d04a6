// Package algorithms holds search procedures that depend only on the
// Connected capability, so they run unchanged over graphs, grids or any
// implicit neighbour relation.
package algorithms

import (
	"errors"

	"github.com/dd0wney/cluso-structures/pkg/logging"
	"github.com/dd0wney/cluso-structures/pkg/metrics"
)

// ErrRoundLimit is returned when SearchOptions.MaxRounds is exhausted before
// the search settles.
var ErrRoundLimit = errors.New("search round limit reached")

// SearchOptions tunes a search. The zero value is an unbounded, silent search.
type SearchOptions struct {
	// MaxRounds caps the number of frontier rounds. Zero means no cap, which
	// never terminates on an unbounded capability when the target is
	// unreachable.
	MaxRounds int
	Logger    logging.Logger
	Metrics   *metrics.Registry
}

// PathResult describes one shortest path search.
type PathResult[T comparable] struct {
	Path        []T // start..end inclusive, nil when not found
	Found       bool
	Rounds      int // frontier rounds executed
	Expanded    int // neighbour enumerations
	Relaxations int // recorded paths replaced by strictly shorter ones
}

// Hops returns the edge count of a path, or -1 for an empty one.
func Hops[T any](path []T) int {
	return len(path) - 1
}

// ShortestPath returns a fewest-hops path from start to end, inclusive, or
// false when end cannot be reached. Among equally short paths the one
// recorded first wins; that choice depends only on the neighbour order c
// reports and is stable across calls.
func ShortestPath[T comparable](start, end T, c Connected[T]) ([]T, bool) {
	res, _ := ShortestPathWithOptions(start, end, c, SearchOptions{})
	return res.Path, res.Found
}

// ShortestPathWithOptions is ShortestPath with limits, logging and metrics.
// The only error is ErrRoundLimit; the partial result is still returned.
func ShortestPathWithOptions[T comparable](start, end T, c Connected[T], opts SearchOptions) (*PathResult[T], error) {
	logger := logging.OrNop(opts.Logger).With(logging.Component("algorithms"))
	timer := logging.StartTimer(logger, "shortest path",
		logging.Item("start", start), logging.Item("end", end))

	// Search backwards from end; paths grow by prepending, so the entry
	// for start already reads start..end.
	paths, st, err := relax(end, c, &start, opts.MaxRounds)

	res := &PathResult[T]{
		Rounds:      st.rounds,
		Expanded:    st.expanded,
		Relaxations: st.relaxations,
	}
	if p, ok := paths[start]; ok {
		res.Path = p
		res.Found = true
	}

	outcome := metrics.ResultUnreachable
	switch {
	case res.Found:
		outcome = metrics.ResultFound
	case err != nil:
		outcome = metrics.ResultLimit
	}
	if opts.Metrics != nil {
		opts.Metrics.RecordSearch(outcome, st.rounds, st.relaxations, timer.Elapsed())
	}

	if err != nil && !res.Found {
		logger.Warn("shortest path abandoned",
			logging.Rounds(st.rounds), logging.Int("max_rounds", opts.MaxRounds))
		return res, err
	}
	timer.End(logging.String("result", outcome),
		logging.Rounds(st.rounds), logging.Hops(Hops(res.Path)))
	return res, nil
}

type searchStats struct {
	rounds      int
	expanded    int
	relaxations int
}

// relax runs frontier relaxation outward from root. When target is non-nil it
// stops after the first round that records a path for target; no later
// round can produce a strictly shorter one.
func relax[T comparable](root T, c Connected[T], target *T, maxRounds int) (map[T][]T, searchStats, error) {
	var st searchStats
	paths := map[T][]T{root: {root}}
	if target != nil && *target == root {
		return paths, st, nil
	}

	visited := make(map[T]struct{})
	current := newFrontier[T]()
	current.add(root)

	for !current.empty() {
		if maxRounds > 0 && st.rounds >= maxRounds {
			return paths, st, ErrRoundLimit
		}
		st.rounds++

		next := newFrontier[T]()
		for _, trial := range current.items {
			st.expanded++
			curr := paths[trial]

			for _, n := range c.Neighbors(trial) {
				if p, ok := paths[n]; !ok {
					paths[n] = prepend(n, curr)
				} else if len(p) > len(curr)+1 {
					paths[n] = prepend(n, curr)
					st.relaxations++
				}

				if _, done := visited[n]; !done {
					next.add(n)
				}
			}

			visited[trial] = struct{}{}
		}

		if target != nil {
			if _, ok := paths[*target]; ok {
				return paths, st, nil
			}
		}
		current = next
	}

	return paths, st, nil
}

func prepend[T any](head T, tail []T) []T {
	out := make([]T, 0, len(tail)+1)
	out = append(out, head)
	return append(out, tail...)
}
