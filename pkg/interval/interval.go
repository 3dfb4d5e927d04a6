// Package interval implements closed integer ranges and their set algebra.
package interval

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Interval is the closed range [min..max]. The zero value is [0..0].
type Interval[T constraints.Integer] struct {
	min, max T
}

// New returns [min..max]. It panics when max < min: a reversed range is a
// bug at the call site, not a runtime condition.
func New[T constraints.Integer](min, max T) Interval[T] {
	if max < min {
		panic(fmt.Sprintf("interval: max %v < min %v", max, min))
	}
	return Interval[T]{min: min, max: max}
}

// Point returns the single-element interval [v..v].
func Point[T constraints.Integer](v T) Interval[T] {
	return Interval[T]{min: v, max: v}
}

func (i Interval[T]) Min() T { return i.min }
func (i Interval[T]) Max() T { return i.max }

// Len returns the number of integers covered. Spans wider than the uint64
// range wrap.
func (i Interval[T]) Len() uint64 {
	return uint64(i.max-i.min) + 1
}

func (i Interval[T]) Contains(v T) bool {
	return i.min <= v && v <= i.max
}

// Overlaps reports whether i and other share at least one integer.
func (i Interval[T]) Overlaps(other Interval[T]) bool {
	return i.min <= other.max && other.min <= i.max
}

// Union returns the merged interval when i and other overlap, otherwise
// both unchanged, receiver first. Adjacent ranges such as [1..2] and [3..4]
// do not overlap and stay separate.
func (i Interval[T]) Union(other Interval[T]) []Interval[T] {
	if !i.Overlaps(other) {
		return []Interval[T]{i, other}
	}
	return []Interval[T]{{min: min(i.min, other.min), max: max(i.max, other.max)}}
}

// Intersect returns the shared range, or false when there is none.
func (i Interval[T]) Intersect(other Interval[T]) (Interval[T], bool) {
	if !i.Overlaps(other) {
		return Interval[T]{}, false
	}
	return Interval[T]{min: max(i.min, other.min), max: min(i.max, other.max)}, true
}

// Difference returns the parts of i not covered by other: none, one, or two
// intervals in ascending order.
func (i Interval[T]) Difference(other Interval[T]) []Interval[T] {
	if !i.Overlaps(other) {
		return []Interval[T]{i}
	}

	var out []Interval[T]
	if other.min > i.min {
		out = append(out, Interval[T]{min: i.min, max: other.min - 1})
	}
	if other.max < i.max {
		out = append(out, Interval[T]{min: other.max + 1, max: i.max})
	}
	return out
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v..%v]", i.min, i.max)
}

// Normalize sorts intervals and merges every overlapping run, returning a
// new slice of disjoint intervals in ascending order.
func Normalize[T constraints.Integer](intervals []Interval[T]) []Interval[T] {
	if len(intervals) == 0 {
		return nil
	}
	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, compare[T])

	out := []Interval[T]{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		if last.Overlaps(iv) {
			last.max = max(last.max, iv.max)
			continue
		}
		out = append(out, iv)
	}
	return out
}

func compare[T constraints.Integer](a, b Interval[T]) int {
	switch {
	case a.min < b.min:
		return -1
	case a.min > b.min:
		return 1
	case a.max < b.max:
		return -1
	case a.max > b.max:
		return 1
	}
	return 0
}
