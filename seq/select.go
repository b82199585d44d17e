package seq

import "fmt"

// Selectors reduce a sequence to at most one element. Each family comes in
// two flavours sharing a single internal scan:
//
//   - First / Last / Single report [ErrNoMatch] when nothing satisfies, and
//     ElementAt reports [ErrIndexOutOfRange];
//   - FirstOrZero / LastOrZero / SingleOrZero / ElementAtOrZero return the
//     zero value of T instead.
//
// The scans return an explicit (value, found, err) status rather than a
// bare value, so an element that legitimately *is* the zero value is never
// confused with "not found".
//
// First, Last and Single take an optional predicate, exactly one:
//
//	v, err := seq.First(src)                                  // first element
//	v, err := seq.First(src, func(n int) bool { return n>2 }) // first match

// ─────────────────────────────────────────────────────────────────────────────
// Public entry points
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of src, or the first satisfying match[0]
// when a predicate is given. The scan stops at the first match.
// Returns [ErrNoMatch] when no element satisfies.
func First[T any](src Sequence[T], match ...func(T) bool) (T, error) {
	var zero T
	if src == nil {
		return zero, ErrNilSource
	}
	pred, err := matchOf(match)
	if err != nil {
		return zero, err
	}
	v, found, err := scanFirst(src.Cursor(), pred)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, ErrNoMatch
	}
	return v, nil
}

// FirstOrZero is [First] returning the zero value of T instead of
// [ErrNoMatch] when no element satisfies.
func FirstOrZero[T any](src Sequence[T], match ...func(T) bool) (T, error) {
	var zero T
	if src == nil {
		return zero, ErrNilSource
	}
	pred, err := matchOf(match)
	if err != nil {
		return zero, err
	}
	v, _, err := scanFirst(src.Cursor(), pred)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// Last returns the last element of src, or the last satisfying match[0]
// when a predicate is given. The whole source is scanned; the most recent
// match is remembered. Returns [ErrNoMatch] when no element satisfies.
func Last[T any](src Sequence[T], match ...func(T) bool) (T, error) {
	var zero T
	if src == nil {
		return zero, ErrNilSource
	}
	pred, err := matchOf(match)
	if err != nil {
		return zero, err
	}
	v, found, err := scanLast(src.Cursor(), pred)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, ErrNoMatch
	}
	return v, nil
}

// LastOrZero is [Last] returning the zero value of T instead of
// [ErrNoMatch] when no element satisfies.
func LastOrZero[T any](src Sequence[T], match ...func(T) bool) (T, error) {
	var zero T
	if src == nil {
		return zero, ErrNilSource
	}
	pred, err := matchOf(match)
	if err != nil {
		return zero, err
	}
	v, _, err := scanLast(src.Cursor(), pred)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// Single returns the one element of src satisfying match[0] (or the one
// element of src when no predicate is given). The whole source is scanned:
// a second satisfying element stops the scan immediately with
// [ErrAmbiguousMatch]; zero satisfying elements return [ErrNoMatch].
func Single[T any](src Sequence[T], match ...func(T) bool) (T, error) {
	var zero T
	if src == nil {
		return zero, ErrNilSource
	}
	pred, err := matchOf(match)
	if err != nil {
		return zero, err
	}
	v, found, err := scanSingle(src.Cursor(), pred)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, ErrNoMatch
	}
	return v, nil
}

// SingleOrZero is [Single] returning the zero value of T instead of
// [ErrNoMatch] when no element satisfies. More than one satisfying element
// is still [ErrAmbiguousMatch]: ambiguity is never resolved to a default.
func SingleOrZero[T any](src Sequence[T], match ...func(T) bool) (T, error) {
	var zero T
	if src == nil {
		return zero, ErrNilSource
	}
	pred, err := matchOf(match)
	if err != nil {
		return zero, err
	}
	v, _, err := scanSingle(src.Cursor(), pred)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// ElementAt returns the element at the given zero-based position, advancing
// a cursor index+1 times. A negative or out-of-range index returns
// [ErrIndexOutOfRange] wrapped with the index — a distinct kind from
// [ErrNoMatch], so callers can tell a bad position from a predicate that
// never matched.
func ElementAt[T any](src Sequence[T], index int) (T, error) {
	var zero T
	if src == nil {
		return zero, ErrNilSource
	}
	v, found, err := scanElementAt(src.Cursor(), index)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return v, nil
}

// ElementAtOrZero is [ElementAt] returning the zero value of T for a
// negative or out-of-range index.
func ElementAtOrZero[T any](src Sequence[T], index int) (T, error) {
	var zero T
	if src == nil {
		return zero, ErrNilSource
	}
	v, _, err := scanElementAt(src.Cursor(), index)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Shared scans
// ─────────────────────────────────────────────────────────────────────────────

// matchOf resolves an optional variadic predicate: absent means every
// element matches, an explicitly nil function is [ErrNilFunc].
func matchOf[T any](match []func(T) bool) (func(T) bool, error) {
	if len(match) == 0 {
		return func(T) bool { return true }, nil
	}
	if match[0] == nil {
		return nil, ErrNilFunc
	}
	return match[0], nil
}

func scanFirst[T any](cur Cursor[T], pred func(T) bool) (T, bool, error) {
	for cur.Next() {
		if v := cur.Current(); pred(v) {
			return v, true, nil
		}
	}
	var zero T
	return zero, false, cur.Err()
}

func scanLast[T any](cur Cursor[T], pred func(T) bool) (T, bool, error) {
	var last T
	found := false
	for cur.Next() {
		if v := cur.Current(); pred(v) {
			last, found = v, true
		}
	}
	if err := cur.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	return last, found, nil
}

func scanSingle[T any](cur Cursor[T], pred func(T) bool) (T, bool, error) {
	var single, zero T
	found := false
	for cur.Next() {
		v := cur.Current()
		if !pred(v) {
			continue
		}
		if found {
			return zero, false, ErrAmbiguousMatch
		}
		single, found = v, true
	}
	if err := cur.Err(); err != nil {
		return zero, false, err
	}
	return single, found, nil
}

func scanElementAt[T any](cur Cursor[T], index int) (T, bool, error) {
	var zero T
	if index < 0 {
		return zero, false, nil
	}
	for cur.Next() {
		if index == 0 {
			return cur.Current(), true, nil
		}
		index--
	}
	return zero, false, cur.Err()
}
