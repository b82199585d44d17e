package seq

import "iter"

// Sequence is the capability every operator in this package consumes: the
// ability to hand out a fresh traversal cursor.
//
// A Sequence is a logical stream of elements, not a container. Every
// sequence constructed by this package (From, Empty, Repeat, Range, Cast, …)
// is restartable: each Cursor call starts an independent traversal from the
// beginning. Sequences adapted from external one-shot producers (see
// [FromSeq]) restart only if the underlying producer does.
//
// Iterating a sequence never mutates the sequence or its elements.
type Sequence[T any] interface {
	// Cursor returns a new cursor positioned before the first element.
	Cursor() Cursor[T]
}

// Cursor is a single-use, stateful traversal over a sequence.
//
// General usage:
//
//	cur := src.Cursor()
//	for cur.Next() {
//	    v := cur.Current()
//	    // do something
//	}
//	if cur.Err() != nil {
//	    // the traversal failed part-way through
//	}
//
// Once Next has returned false it keeps returning false; a cursor never
// resurrects. A cursor is exclusively owned by the code that requested it
// and must not be advanced from more than one goroutine. Two independent
// cursors over the same restartable sequence may be driven from separate
// goroutines only if the source's production logic shares no mutable state;
// sequences constructed by this package satisfy that.
type Cursor[T any] interface {
	// Next advances to the next element and reports whether one exists.
	Next() bool

	// Current returns the element Next advanced to. It is only valid after
	// a call to Next that returned true.
	Current() T

	// Err returns the failure that terminated the traversal, if any.
	// It is meaningful once Next has returned false.
	Err() error
}

// ─────────────────────────────────────────────────────────────────────────────
// Sources
// ─────────────────────────────────────────────────────────────────────────────

// From creates a restartable Sequence from a variadic list of items (copied).
func From[T any](items ...T) Sequence[T] {
	return FromSlice(items)
}

// FromSlice creates a restartable Sequence backed by a copy of the slice.
// Mutating the original slice afterwards does not affect the sequence.
func FromSlice[T any](items []T) Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return sliceSequence[T](dst)
}

// FromSeq adapts a Go range-over-func iterator into a Sequence.
//
// The result is restartable only if s itself restarts when invoked again
// (a seq closing over a slice does; a seq draining a channel does not).
//
// A [Cursor] has no release method, so the iter.Pull pair behind each cursor
// is stopped only when the cursor exhausts naturally. A short-circuiting
// consumer that abandons the cursor mid-iteration (First, Contains, …)
// leaves s suspended at its last yield: cleanup deferred inside s does not
// run until then, or ever, if the cursor is simply dropped. Sources that
// hold resources needing deterministic release should be materialized with
// [ToSlice] or [ToList] instead of being consumed partially.
func FromSeq[T any](s iter.Seq[T]) Sequence[T] {
	return cursorSequence[T](func() Cursor[T] {
		next, stop := iter.Pull(s)
		return &pullCursor[T]{next: next, stop: stop}
	})
}

// sliceSequence is the slice-backed Sequence behind From and FromSlice.
type sliceSequence[T any] []T

func (s sliceSequence[T]) Cursor() Cursor[T] {
	return &sliceCursor[T]{items: s}
}

type sliceCursor[T any] struct {
	items []T
	next  int
	cur   T
}

func (c *sliceCursor[T]) Next() bool {
	if c.next >= len(c.items) {
		var zero T
		c.cur = zero
		return false
	}
	c.cur = c.items[c.next]
	c.next++
	return true
}

func (c *sliceCursor[T]) Current() T { return c.cur }
func (c *sliceCursor[T]) Err() error { return nil }

// cursorSequence adapts a cursor factory into a Sequence. Generators and
// adaptation operators are built on it: the factory recreates production
// state from scratch on every call, which is what makes them restartable.
type cursorSequence[T any] func() Cursor[T]

func (s cursorSequence[T]) Cursor() Cursor[T] { return s() }

// pullCursor drives an iter.Pull pair behind the Cursor interface.
type pullCursor[T any] struct {
	next func() (T, bool)
	stop func()
	cur  T
	done bool
}

func (c *pullCursor[T]) Next() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		var zero T
		c.cur = zero
		c.done = true
		c.stop()
		return false
	}
	c.cur = v
	return true
}

func (c *pullCursor[T]) Current() T { return c.cur }
func (c *pullCursor[T]) Err() error { return nil }
