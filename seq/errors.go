package seq

import "errors"

// Sentinel errors returned by sequence operators.
//
// Operators that attach context (the offending index, key, or type) wrap
// these sentinels with fmt.Errorf("%w: …"), so callers should always match
// with errors.Is rather than direct comparison.
var (
	// ErrNilSource is returned when a required source sequence is nil.
	ErrNilSource = errors.New("seq: operation on nil sequence")

	// ErrNilFunc is returned when a required predicate, key, value or
	// equality function is nil.
	ErrNilFunc = errors.New("seq: nil function argument")

	// ErrNegativeCount is returned by Repeat and Range when count < 0.
	ErrNegativeCount = errors.New("seq: count must not be negative")

	// ErrRangeOverflow is returned by Range when the last value of the
	// range would exceed the representable int range.
	ErrRangeOverflow = errors.New("seq: range end overflows int")

	// ErrInvalidCast is reported by a Cast cursor when an element's runtime
	// type does not satisfy the requested type.
	ErrInvalidCast = errors.New("seq: element type mismatch")

	// ErrDuplicateKey is returned by ToMap and KeyBy when two elements
	// produce the same key.
	ErrDuplicateKey = errors.New("seq: duplicate key")

	// ErrNoMatch is returned by First, Last and Single when no element
	// satisfies the search criterion.
	ErrNoMatch = errors.New("seq: no matching element")

	// ErrIndexOutOfRange is returned by ElementAt when the index is negative
	// or the source exhausts before reaching it.
	ErrIndexOutOfRange = errors.New("seq: index out of range")

	// ErrAmbiguousMatch is returned by Single and SingleOrZero when more
	// than one element satisfies the predicate.
	ErrAmbiguousMatch = errors.New("seq: more than one matching element")

	// ErrCountOverflow is returned by Count when the tally would exceed the
	// representable int range.
	ErrCountOverflow = errors.New("seq: count overflows int")
)
