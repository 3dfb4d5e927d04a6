package grid

// Region is an arbitrary set of cells with 4-neighbour adjacency between
// members. It suits sparse or irregular shapes where a Grid would be mostly
// blocked.
type Region map[Point]struct{}

// NewRegion returns a region holding pts.
func NewRegion(pts ...Point) Region {
	r := make(Region, len(pts))
	for _, p := range pts {
		r[p] = struct{}{}
	}
	return r
}

// Rect returns the region covering [x0, x0+w) x [y0, y0+h).
func Rect(x0, y0, w, h int) Region {
	r := make(Region, max(w*h, 0))
	for x := x0; x < x0+w; x++ {
		for y := y0; y < y0+h; y++ {
			r[Point{x, y}] = struct{}{}
		}
	}
	return r
}

func (r Region) Add(p Point) {
	r[p] = struct{}{}
}

func (r Region) Has(p Point) bool {
	_, ok := r[p]
	return ok
}

// Neighbors returns the members adjacent to p in up, right, down, left order.
func (r Region) Neighbors(p Point) []Point {
	var out []Point
	for _, d := range vonNeumann {
		if q := p.Add(d); r.Has(q) {
			out = append(out, q)
		}
	}
	return out
}
