package grid

// Board is a fixed Cols x Rows array of cells, addressed by Point{X: col,
// Y: row}, with 8-neighbour adjacency. It is the shape cellular automata
// work on.
type Board[T any] struct {
	cols, rows int
	cells      []T
}

// NewBoard returns a board with every cell set to fill.
func NewBoard[T any](cols, rows int, fill T) *Board[T] {
	cols, rows = max(cols, 0), max(rows, 0)
	cells := make([]T, cols*rows)
	for i := range cells {
		cells[i] = fill
	}
	return &Board[T]{cols: cols, rows: rows, cells: cells}
}

func (b *Board[T]) Cols() int { return b.cols }
func (b *Board[T]) Rows() int { return b.rows }

func (b *Board[T]) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.cols && p.Y < b.rows
}

// Get returns the cell at p, or false when p is off the board.
func (b *Board[T]) Get(p Point) (T, bool) {
	if !b.Contains(p) {
		var zero T
		return zero, false
	}
	return b.cells[p.Y*b.cols+p.X], true
}

// Set stores v at p and reports whether p was on the board.
func (b *Board[T]) Set(p Point, v T) bool {
	if !b.Contains(p) {
		return false
	}
	b.cells[p.Y*b.cols+p.X] = v
	return true
}

// Neighbors returns the on-board points of p's Moore neighbourhood.
func (b *Board[T]) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(moore))
	for _, d := range moore {
		if q := p.Add(d); b.Contains(q) {
			out = append(out, q)
		}
	}
	return out
}

// NeighborSpaces returns the values of the cells around p, in the order of
// Neighbors. Cells beyond the edge are left out.
func (b *Board[T]) NeighborSpaces(p Point) []T {
	pts := b.Neighbors(p)
	out := make([]T, len(pts))
	for i, q := range pts {
		out[i] = b.cells[q.Y*b.cols+q.X]
	}
	return out
}
