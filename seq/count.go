package seq

import "math"

// Count fully consumes src and returns the number of elements, or — when
// the optional predicate is given — the number of elements satisfying it.
//
// The tally is checked against math.MaxInt *before* each increment, so a
// source longer than the representable range returns [ErrCountOverflow]
// instead of wrapping. Returns [ErrNilSource] if src is nil and [ErrNilFunc]
// for an explicitly nil predicate.
func Count[T any](src Sequence[T], match ...func(T) bool) (int, error) {
	if src == nil {
		return 0, ErrNilSource
	}
	pred, err := matchOf(match)
	if err != nil {
		return 0, err
	}
	n := 0
	cur := src.Cursor()
	for cur.Next() {
		if !pred(cur.Current()) {
			continue
		}
		if n == math.MaxInt {
			return 0, ErrCountOverflow
		}
		n++
	}
	if err := cur.Err(); err != nil {
		return 0, err
	}
	return n, nil
}
