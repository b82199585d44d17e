package seq

import (
	"fmt"
	"math"
)

// Empty returns a sequence that yields no elements.
func Empty[T any]() Sequence[T] {
	return FromSlice[T](nil)
}

// Repeat returns a lazy sequence that yields element exactly count times.
// Elements are produced one per cursor advance, never pre-built.
// Returns [ErrNegativeCount] if count < 0; count = 0 yields an empty sequence.
func Repeat[T any](element T, count int) (Sequence[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	return cursorSequence[T](func() Cursor[T] {
		return &repeatCursor[T]{element: element, remaining: count}
	}), nil
}

// Range returns a lazy sequence of the count consecutive integers starting
// at start. Returns [ErrNegativeCount] if count < 0, and [ErrRangeOverflow]
// if start+count-1 would exceed math.MaxInt — both checked up front, before
// any element is produced.
func Range(start, count int) (Sequence[int], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	if count > 0 && start > math.MaxInt-(count-1) {
		return nil, fmt.Errorf("%w: start %d, count %d", ErrRangeOverflow, start, count)
	}
	return cursorSequence[int](func() Cursor[int] {
		return &rangeCursor{next: start, remaining: count}
	}), nil
}

type repeatCursor[T any] struct {
	element   T
	remaining int
}

func (c *repeatCursor[T]) Next() bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining--
	return true
}

func (c *repeatCursor[T]) Current() T { return c.element }
func (c *repeatCursor[T]) Err() error { return nil }

type rangeCursor struct {
	next      int
	remaining int
	cur       int
}

func (c *rangeCursor) Next() bool {
	if c.remaining <= 0 {
		c.cur = 0
		return false
	}
	c.cur = c.next
	c.remaining--
	// skip the final increment so a range ending at math.MaxInt cannot wrap
	if c.remaining > 0 {
		c.next++
	}
	return true
}

func (c *rangeCursor) Current() int { return c.cur }
func (c *rangeCursor) Err() error   { return nil }
