package seq

import (
	"fmt"
	"reflect"
)

// AsSequence re-exposes src element by element behind an opaque Sequence
// value, hiding whatever richer concrete type src might be (for example a
// *List with indexed access). Iteration is lazy: nothing is copied, and
// failures of the underlying cursor propagate unchanged.
// Returns [ErrNilSource] if src is nil.
func AsSequence[T any](src Sequence[T]) (Sequence[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return cursorSequence[T](src.Cursor), nil
}

// Cast lazily re-types each element of an untyped source as T.
//
// The type check happens as the cursor advances, one element at a time: all
// elements before an offending one are yielded normally, and only when the
// cursor reaches an element whose runtime type is not assignable to T does
// the traversal stop, reporting [ErrInvalidCast] (with the element's
// position and both types) through [Cursor.Err].
//
// A nil element has no runtime type and reports [ErrInvalidCast] regardless
// of T, even when T is an interface type a nil could be assigned to.
//
// Returns [ErrNilSource] if src itself is nil.
func Cast[T any](src Sequence[any]) (Sequence[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return cursorSequence[T](func() Cursor[T] {
		return &castCursor[T]{src: src.Cursor()}
	}), nil
}

type castCursor[T any] struct {
	src Cursor[any]
	pos int
	cur T
	err error
}

func (c *castCursor[T]) Next() bool {
	var zero T
	if c.err != nil {
		return false
	}
	if !c.src.Next() {
		c.cur = zero
		c.err = c.src.Err()
		return false
	}
	v := c.src.Current()
	t, ok := v.(T)
	if !ok {
		c.cur = zero
		c.err = fmt.Errorf("%w: element %d is %T, not %s",
			ErrInvalidCast, c.pos, v, reflect.TypeFor[T]())
		return false
	}
	c.cur = t
	c.pos++
	return true
}

func (c *castCursor[T]) Current() T { return c.cur }
func (c *castCursor[T]) Err() error { return c.err }
