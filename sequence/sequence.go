package sequence

import (
	"fmt"
	"iter"
	"strings"
)

// Node holds one item and the link to its successor.
// A node is owned by its predecessor, or by the Sequence head.
type Node[T any] struct {
	item T
	next *Node[T]
}

// Item returns the stored item.
func (n *Node[T]) Item() T { return n.item }

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Sequence is a singly linked, uniqueness-checked list of items.
// The zero value is not usable; construct with New or NewFunc.
type Sequence[T any] struct {
	head   *Node[T]
	length int
	eq     func(a, b T) bool
}

// New returns an empty Sequence comparing items with ==.
func New[T comparable]() *Sequence[T] {
	return &Sequence[T]{eq: func(a, b T) bool { return a == b }}
}

// NewFunc returns an empty Sequence comparing items with eq.
// Panics if eq is nil.
func NewFunc[T any](eq func(a, b T) bool) *Sequence[T] {
	if eq == nil {
		panic("sequence: NewFunc(nil)")
	}
	return &Sequence[T]{eq: eq}
}

// Len returns the number of items.
func (s *Sequence[T]) Len() int { return s.length }

// Head returns the first node, or nil when the sequence is empty.
func (s *Sequence[T]) Head() *Node[T] { return s.head }

// Contains reports whether an item equal to item is present.
func (s *Sequence[T]) Contains(item T) bool {
	_, ok := s.Find(func(x T) bool { return s.eq(x, item) })
	return ok
}

// Find returns the first item, head to tail, for which match returns true.
func (s *Sequence[T]) Find(match func(T) bool) (T, bool) {
	for n := s.head; n != nil; n = n.next {
		if match(n.item) {
			return n.item, true
		}
	}
	var zero T
	return zero, false
}

// Prepend inserts item at the head if no equal item is present.
// It reports whether the item was inserted.
func (s *Sequence[T]) Prepend(item T) bool {
	if s.Contains(item) {
		return false
	}
	s.head = &Node[T]{item: item, next: s.head}
	s.length++
	return true
}

// Remove unlinks the first item equal to item.
// It reports whether anything was removed.
func (s *Sequence[T]) Remove(item T) bool {
	_, ok := s.RemoveFunc(func(x T) bool { return s.eq(x, item) })
	return ok
}

// RemoveFunc unlinks the first item for which match returns true and
// returns it.
func (s *Sequence[T]) RemoveFunc(match func(T) bool) (T, bool) {
	var prev *Node[T]
	for n := s.head; n != nil; prev, n = n, n.next {
		if !match(n.item) {
			continue
		}
		if prev == nil {
			s.head = n.next
		} else {
			prev.next = n.next
		}
		n.next = nil
		s.length--
		return n.item, true
	}
	var zero T
	return zero, false
}

// All yields the items from head to tail.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.item) {
				return
			}
		}
	}
}

// Items returns a snapshot of the items from head to tail.
func (s *Sequence[T]) Items() []T {
	out := make([]T, 0, s.length)
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.item)
	}
	return out
}

// Join renders the items head to tail separated by "->".
func (s *Sequence[T]) Join() string {
	var sb strings.Builder
	for n := s.head; n != nil; n = n.next {
		if n != s.head {
			sb.WriteString("->")
		}
		fmt.Fprint(&sb, n.item)
	}
	return sb.String()
}

// String renders the sequence as "List:a->b->c".
func (s *Sequence[T]) String() string {
	return "List:" + s.Join()
}
