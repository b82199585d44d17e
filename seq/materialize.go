package seq

import (
	"fmt"
	"slices"
)

// Materializers are the deliberate boundary where laziness ends: each one
// fully consumes its source in a single pass. A single growing pass (rather
// than count-then-fill) is used throughout so that one-shot sources, such as
// a [FromSeq] over a non-restartable iterator, materialize correctly.

// ToSlice fully consumes src into a slice sized exactly to the element
// count, preserving order. Returns [ErrNilSource] if src is nil.
func ToSlice[T any](src Sequence[T]) ([]T, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	out := []T{}
	cur := src.Cursor()
	for cur.Next() {
		out = append(out, cur.Current())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return slices.Clip(out), nil
}

// ToList fully consumes src into a [List], preserving order.
// Returns [ErrNilSource] if src is nil.
func ToList[T any](src Sequence[T]) (*List[T], error) {
	items, err := ToSlice(src)
	if err != nil {
		return nil, err
	}
	return &List[T]{items: items}, nil
}

// ToMap fully consumes src into a map, computing each entry's key and value
// with the given functions. Key uniqueness is enforced at insertion time:
// the moment an element's key already exists in the map built so far, ToMap
// stops and returns [ErrDuplicateKey] wrapped with the offending key — a
// repeated key is never silently overwritten.
//
// Keys are compared with the built-in equality of K; to compare under a
// custom notion of equality, normalise inside the key function (lowercase a
// string, round a quantity) so equal keys collide.
//
// Returns [ErrNilSource] if src is nil and [ErrNilFunc] if key or value is.
func ToMap[T any, K comparable, V any](src Sequence[T], key func(T) K, value func(T) V) (map[K]V, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if key == nil || value == nil {
		return nil, ErrNilFunc
	}
	out := make(map[K]V)
	cur := src.Cursor()
	for cur.Next() {
		item := cur.Current()
		k := key(item)
		if _, exists := out[k]; exists {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		out[k] = value(item)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// KeyBy is [ToMap] with the element itself as the value: it builds a map
// from key(item) to item. Unlike a last-one-wins index, a repeated key
// returns [ErrDuplicateKey].
func KeyBy[T any, K comparable](src Sequence[T], key func(T) K) (map[K]T, error) {
	return ToMap(src, key, func(item T) T { return item })
}
