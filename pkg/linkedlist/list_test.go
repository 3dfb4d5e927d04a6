package linkedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Push(t *testing.T) {
	l := New[int]()
	assert.Equal(t, 0, l.Len())
	_, ok := l.Head()
	assert.False(t, ok)

	l.PushTail(2)
	l.PushTail(3)
	l.PushHead(1)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2, 3}, l.Values())
	assert.Equal(t, "1 2 3", l.String())
}

func TestList_InsertAfter(t *testing.T) {
	l := WithCapacity[string](4)
	a := l.PushTail("a")
	c := l.PushTail("c")

	b, err := l.InsertAfter("b", a)
	require.NoError(t, err)
	d, err := l.InsertAfter("d", c)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d"}, l.Values())

	tail, _ := l.Tail()
	assert.Equal(t, d, tail)
	next, _ := l.Next(a)
	assert.Equal(t, b, next)
	prev, _ := l.Prev(c)
	assert.Equal(t, b, prev)

	_, err = l.InsertAfter("x", 99)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestList_Remove(t *testing.T) {
	l := New[int]()
	ids := make([]int, 5)
	for i := range ids {
		ids[i] = l.PushTail(i * 10)
	}

	tests := []struct {
		name string
		id   int
		val  int
		want []int
	}{
		{"middle", ids[2], 20, []int{0, 10, 30, 40}},
		{"head", ids[0], 0, []int{10, 30, 40}},
		{"tail", ids[4], 40, []int{10, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := l.Remove(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.val, v)
			assert.Equal(t, tt.want, l.Values())
			assert.Equal(t, len(tt.want), l.Len())
		})
	}

	head, _ := l.Head()
	tail, _ := l.Tail()
	assert.Equal(t, ids[1], head)
	assert.Equal(t, ids[3], tail)

	_, err := l.Remove(ids[2])
	assert.ErrorIs(t, err, ErrRemoved)
	_, err = l.Get(ids[2])
	assert.ErrorIs(t, err, ErrRemoved)
	_, err = l.Remove(-1)
	assert.ErrorIs(t, err, ErrInvalidID)

	// surviving ids are unchanged by removals
	v, err := l.Get(ids[3])
	require.NoError(t, err)
	assert.Equal(t, 30, v)
}

func TestList_RemoveLast(t *testing.T) {
	l := New[int]()
	id := l.PushHead(7)

	_, err := l.Remove(id)
	require.NoError(t, err)

	_, ok := l.Head()
	assert.False(t, ok)
	_, ok = l.Tail()
	assert.False(t, ok)
	assert.Empty(t, l.Values())
	assert.Equal(t, "", l.String())

	// the list is reusable after emptying
	l.PushTail(8)
	assert.Equal(t, []int{8}, l.Values())
}

func TestList_AllStopsEarly(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		l.PushTail(i)
	}

	var seen []int
	for _, v := range l.All() {
		if v == 2 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestList_NextPrevBounds(t *testing.T) {
	l := New[int]()
	only := l.PushTail(1)

	_, ok := l.Next(only)
	assert.False(t, ok)
	_, ok = l.Prev(only)
	assert.False(t, ok)
	_, ok = l.Next(42)
	assert.False(t, ok)
}
