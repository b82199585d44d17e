package seq

// Contains reports whether src yields at least one element equal to value,
// using the built-in equality of T. The scan short-circuits on the first
// match. Returns [ErrNilSource] if src is nil.
func Contains[T comparable](src Sequence[T], value T) (bool, error) {
	return ContainsFunc(src, value, func(a, b T) bool { return a == b })
}

// ContainsFunc is [Contains] under a caller-supplied equality function.
// Returns [ErrNilFunc] if eq is nil.
func ContainsFunc[T any](src Sequence[T], value T, eq func(a, b T) bool) (bool, error) {
	if src == nil {
		return false, ErrNilSource
	}
	if eq == nil {
		return false, ErrNilFunc
	}
	cur := src.Cursor()
	for cur.Next() {
		if eq(cur.Current(), value) {
			return true, nil
		}
	}
	if err := cur.Err(); err != nil {
		return false, err
	}
	return false, nil
}

// All reports whether every element of src satisfies pred. The scan
// short-circuits false on the first failing element; an empty source is
// vacuously true. Returns [ErrNilSource] / [ErrNilFunc] on nil arguments.
func All[T any](src Sequence[T], pred func(T) bool) (bool, error) {
	if src == nil {
		return false, ErrNilSource
	}
	if pred == nil {
		return false, ErrNilFunc
	}
	cur := src.Cursor()
	for cur.Next() {
		if !pred(cur.Current()) {
			return false, nil
		}
	}
	if err := cur.Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Any reports whether src yields at least one element, or — when the
// optional predicate is given — at least one element satisfying it.
//
// The scan short-circuits on the first match, so elements after it are
// never visited: predicates passed to Any should be free of side effects.
// Returns [ErrNilSource] if src is nil and [ErrNilFunc] for an explicitly
// nil predicate.
func Any[T any](src Sequence[T], match ...func(T) bool) (bool, error) {
	if src == nil {
		return false, ErrNilSource
	}
	pred, err := matchOf(match)
	if err != nil {
		return false, err
	}
	cur := src.Cursor()
	for cur.Next() {
		if pred(cur.Current()) {
			return true, nil
		}
	}
	if err := cur.Err(); err != nil {
		return false, err
	}
	return false, nil
}

// SequenceEqual reports whether first and second yield equal elements in the
// same order and exhaust at the same step, using the built-in equality of T.
// Returns [ErrNilSource] if either source is nil.
func SequenceEqual[T comparable](first, second Sequence[T]) (bool, error) {
	return SequenceEqualFunc(first, second, func(a, b T) bool { return a == b })
}

// SequenceEqualFunc is [SequenceEqual] under a caller-supplied equality
// function. Both cursors are walked in lockstep; the scan stops as soon as a
// pair mismatches or one source exhausts before the other.
// Returns [ErrNilFunc] if eq is nil.
func SequenceEqualFunc[T any](first, second Sequence[T], eq func(a, b T) bool) (bool, error) {
	if first == nil || second == nil {
		return false, ErrNilSource
	}
	if eq == nil {
		return false, ErrNilFunc
	}
	a, b := first.Cursor(), second.Cursor()
	for {
		aOK := a.Next()
		bOK := b.Next()
		if !aOK {
			if err := a.Err(); err != nil {
				return false, err
			}
		}
		if !bOK {
			if err := b.Err(); err != nil {
				return false, err
			}
		}
		if aOK != bOK {
			return false, nil
		}
		if !aOK {
			return true, nil
		}
		if !eq(a.Current(), b.Current()) {
			return false, nil
		}
	}
}
