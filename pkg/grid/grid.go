package grid

import (
	"github.com/bits-and-blooms/bitset"
)

// Grid is a Width x Height rectangle of cells with 4-neighbour adjacency.
// Blocked cells exist but are never reported as neighbours.
type Grid struct {
	width, height int
	blocked       *bitset.BitSet
}

// New returns a grid with every cell open. Negative sizes are treated as 0.
func New(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	return &Grid{
		width:   width,
		height:  height,
		blocked: bitset.New(uint(width * height)),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

func (g *Grid) bit(p Point) uint {
	return uint(p.Y*g.width + p.X)
}

// Block marks p as impassable. Points outside the grid are ignored.
func (g *Grid) Block(p Point) {
	if g.Contains(p) {
		g.blocked.Set(g.bit(p))
	}
}

// Unblock reopens p.
func (g *Grid) Unblock(p Point) {
	if g.Contains(p) {
		g.blocked.Clear(g.bit(p))
	}
}

// Blocked reports whether p is impassable. Points outside the grid count as
// blocked.
func (g *Grid) Blocked(p Point) bool {
	return !g.Contains(p) || g.blocked.Test(g.bit(p))
}

// Open returns the number of passable cells.
func (g *Grid) Open() int {
	return g.width*g.height - int(g.blocked.Count())
}

// Neighbors returns the open axis-aligned neighbours of p in up, right,
// down, left order. A blocked p still reports its open neighbours.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(vonNeumann))
	for _, d := range vonNeumann {
		if q := p.Add(d); !g.Blocked(q) {
			out = append(out, q)
		}
	}
	return out
}
