package seq

import (
	"encoding/json"
	"fmt"
)

// List is a growable, order-preserving container of T and the target of
// [ToList]. It is immutable-by-default: Push returns a *new* List, leaving
// the original unchanged, so List values are safe to read from multiple
// goroutines without locking.
//
// A List is itself a [Sequence], so materialized output feeds straight back
// into the operator set:
//
//	l, _ := seq.ToList(src)
//	n, _ := seq.Count[int](l)
type List[T any] struct {
	items []T
}

// NewList creates a List from a variadic list of items (copied).
func NewList[T any](items ...T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// Cursor returns a fresh cursor over the list's items.
// It implements [Sequence].
func (l *List[T]) Cursor() Cursor[T] {
	return &sliceCursor[T]{items: l.items}
}

// All returns a copy of the underlying slice.
func (l *List[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// ToSlice is an alias for [List.All].
func (l *List[T]) ToSlice() []T { return l.All() }

// ToJSON serialises the list items to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// Count returns the number of items in the list.
func (l *List[T]) Count() int { return len(l.items) }

// IsEmpty reports whether the list contains no items.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// IsNotEmpty reports whether the list has at least one item.
func (l *List[T]) IsNotEmpty() bool { return len(l.items) > 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// Has reports whether index is a valid position in the list.
func (l *List[T]) Has(index int) bool {
	return index >= 0 && index < len(l.items)
}

// Push returns a new list with items appended.
func (l *List[T]) Push(items ...T) *List[T] {
	out := make([]T, len(l.items)+len(items))
	copy(out, l.items)
	copy(out[len(l.items):], items)
	return &List[T]{items: out}
}

// Each calls fn(item, index) for every item.
func (l *List[T]) Each(fn func(T, int)) {
	for i, item := range l.items {
		fn(item, i)
	}
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}
