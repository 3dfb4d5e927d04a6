// Package grid provides bounded 2-D structures that report their own
// neighbours, so path searches can run over them without building a graph.
package grid

import "fmt"

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// P is shorthand for Point{X: x, Y: y}.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// vonNeumann lists the axis-aligned offsets in the order neighbours are
// reported: up the Y axis, right, down, left.
var vonNeumann = [4]Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// moore lists the 8 surrounding offsets, row by row.
var moore = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// MooreNeighborhood returns the 8 points surrounding p, unbounded.
func MooreNeighborhood(p Point) []Point {
	out := make([]Point, 0, len(moore))
	for _, d := range moore {
		out = append(out, p.Add(d))
	}
	return out
}
