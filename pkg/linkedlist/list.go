// Package linkedlist is a doubly linked list whose nodes live in a slice and
// link by index. Removal unlinks a node but keeps its slot, so ids handed out
// stay stable.
package linkedlist

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	ErrInvalidID = errors.New("linkedlist: invalid node id")
	ErrRemoved   = errors.New("linkedlist: node already removed")
)

const none = -1

type node[T any] struct {
	prev, next int
	removed    bool
	value      T
}

// List is an arena-backed doubly linked list. The zero value is not usable;
// call New.
type List[T any] struct {
	data       []node[T]
	head, tail int
	size       int
}

func New[T any]() *List[T] {
	return WithCapacity[T](0)
}

// WithCapacity preallocates room for n nodes.
func WithCapacity[T any](n int) *List[T] {
	return &List[T]{
		data: make([]node[T], 0, n),
		head: none,
		tail: none,
	}
}

// Len returns the number of linked nodes.
func (l *List[T]) Len() int {
	return l.size
}

// PushTail appends value and returns its id.
func (l *List[T]) PushTail(value T) int {
	id := len(l.data)
	l.data = append(l.data, node[T]{prev: l.tail, next: none, value: value})
	if l.tail != none {
		l.data[l.tail].next = id
	} else {
		l.head = id
	}
	l.tail = id
	l.size++
	return id
}

// PushHead prepends value and returns its id.
func (l *List[T]) PushHead(value T) int {
	id := len(l.data)
	l.data = append(l.data, node[T]{prev: none, next: l.head, value: value})
	if l.head != none {
		l.data[l.head].prev = id
	} else {
		l.tail = id
	}
	l.head = id
	l.size++
	return id
}

// InsertAfter links value directly after the node at after and returns the
// new id.
func (l *List[T]) InsertAfter(value T, after int) (int, error) {
	if err := l.check(after); err != nil {
		return none, err
	}

	id := len(l.data)
	next := l.data[after].next
	l.data = append(l.data, node[T]{prev: after, next: next, value: value})
	l.data[after].next = id
	if next != none {
		l.data[next].prev = id
	} else {
		l.tail = id
	}
	l.size++
	return id, nil
}

// Remove unlinks the node at id and returns its value. The slot is not
// reused.
func (l *List[T]) Remove(id int) (T, error) {
	if err := l.check(id); err != nil {
		var zero T
		return zero, err
	}

	n := &l.data[id]
	if n.prev != none {
		l.data[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != none {
		l.data[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next, n.removed = none, none, true
	l.size--
	return n.value, nil
}

// Get returns the value at id.
func (l *List[T]) Get(id int) (T, error) {
	if err := l.check(id); err != nil {
		var zero T
		return zero, err
	}
	return l.data[id].value, nil
}

// Head returns the id of the first node, or false for an empty list.
func (l *List[T]) Head() (int, bool) {
	return l.head, l.head != none
}

// Tail returns the id of the last node, or false for an empty list.
func (l *List[T]) Tail() (int, bool) {
	return l.tail, l.tail != none
}

// Next returns the id following id, or false at the tail or for a bad id.
func (l *List[T]) Next(id int) (int, bool) {
	if l.check(id) != nil {
		return none, false
	}
	n := l.data[id].next
	return n, n != none
}

// Prev returns the id preceding id, or false at the head or for a bad id.
func (l *List[T]) Prev(id int) (int, bool) {
	if l.check(id) != nil {
		return none, false
	}
	p := l.data[id].prev
	return p, p != none
}

// All iterates id, value pairs from head to tail.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for id := l.head; id != none; id = l.data[id].next {
			if !yield(id, l.data[id].value) {
				return
			}
		}
	}
}

// Values returns the linked values from head to tail.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for _, v := range l.All() {
		out = append(out, v)
	}
	return out
}

// String renders the values head to tail, space separated.
func (l *List[T]) String() string {
	var sb strings.Builder
	for id, v := range l.All() {
		if id != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	return sb.String()
}

func (l *List[T]) check(id int) error {
	if id < 0 || id >= len(l.data) {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	if l.data[id].removed {
		return fmt.Errorf("%w: %d", ErrRemoved, id)
	}
	return nil
}
