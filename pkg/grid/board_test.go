package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_GetSet(t *testing.T) {
	b := NewBoard(3, 2, '.')

	assert.Equal(t, 3, b.Cols())
	assert.Equal(t, 2, b.Rows())

	require.True(t, b.Set(P(2, 1), '#'))
	assert.False(t, b.Set(P(3, 0), '#'))

	v, ok := b.Get(P(2, 1))
	assert.True(t, ok)
	assert.Equal(t, '#', v)

	_, ok = b.Get(P(0, 2))
	assert.False(t, ok)
}

func TestBoard_NeighborSpaces(t *testing.T) {
	// 3x3 board numbered row by row:
	// 0 1 2
	// 3 4 5
	// 6 7 8
	b := NewBoard(3, 3, 0)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			b.Set(P(x, y), y*3+x)
		}
	}

	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, b.NeighborSpaces(P(1, 1)))
	assert.Equal(t, []int{1, 3, 4}, b.NeighborSpaces(P(0, 0)))
	assert.Equal(t, []int{4, 5, 7}, b.NeighborSpaces(P(2, 2)))
	assert.Equal(t, []Point{P(1, 0), P(0, 1), P(1, 1)}, b.Neighbors(P(0, 0)))
}

func TestBoard_Empty(t *testing.T) {
	b := NewBoard(0, 0, false)
	assert.Empty(t, b.Neighbors(P(0, 0)))
	assert.Empty(t, b.NeighborSpaces(P(0, 0)))
}
